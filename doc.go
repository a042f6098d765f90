// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package uhppoted-app-sheets-columns retrieves a range from a Google Sheets worksheet using a service
account and reshapes it into a set of columns keyed by the header row.

The library is made up of:

  - credentials, which loads a service account key (from a file or inline) into an authenticated identity
  - connector, which opens a Sheets v4 connection and fetches a range as a column mapping
  - table, which converts a column mapping to a table for export (TSV, XLSX) and numeric summaries

uhppoted-app-sheets-columns also includes a command line application that supports the following commands:

  - version, to display the application version
  - get, to download a worksheet range as a TSV or XLSX file
  - columns, to print a worksheet range as a JSON column mapping
  - describe, to print a numeric summary of each column in a worksheet range
*/
package sheets

package commands

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

var (
	DEFAULT_WORKDIR     = filepath.Join(programData(), "var", "sheets")
	DEFAULT_CREDENTIALS = filepath.Join(programData(), "etc", "sheets", ".google", "credentials.json")
)

func programData() string {
	folder, err := windows.KnownFolderPath(windows.FOLDERID_ProgramData, windows.KF_FLAG_DEFAULT)
	if err != nil {
		return `C:\uhppoted`
	}

	return filepath.Join(folder, "uhppoted")
}

package commands

const (
	_etc = "/usr/local/etc/uhppoted"
	_var = "/usr/local/var/uhppoted"

	DEFAULT_WORKDIR     = _var + "/sheets"
	DEFAULT_CREDENTIALS = _etc + "/sheets/.google/credentials.json"
)

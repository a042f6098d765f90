package commands

const (
	_etc = "/usr/local/etc/com.github.uhppoted"
	_var = "/usr/local/var/com.github.uhppoted"

	DEFAULT_WORKDIR     = _var + "/sheets"
	DEFAULT_CREDENTIALS = _etc + "/sheets/.google/credentials.json"
)

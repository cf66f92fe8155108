package commands

const (
	_etc = "/usr/local/etc/gsheet-keyring"
	_var = "/usr/local/var/gsheet-keyring"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)

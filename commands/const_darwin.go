package commands

const (
	_etc = "/usr/local/etc/com.github.gsheet-keyring"
	_var = "/usr/local/var/com.github.gsheet-keyring"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)

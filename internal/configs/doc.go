// Package configs loads the oauth2keys settings file.
//
// Settings are stored in TOML, by default in oauth2keys.toml in the working
// directory. The file is optional: without it the built-in defaults apply.
//
//	[encryption_key]
//	env_dir = "."                          # the .env file is <env_dir>/.env
//
//	[rsa]
//	private_key = "var/oauth/private.key"
//	public_key = "var/oauth/public.key"
//	length = 4096
//
//	[audit]
//	log_path = ""                          # empty disables the audit trail
//
// Relative paths in a settings file are resolved against the directory that
// contains the file, so the tool behaves the same from any working directory.
// Unknown keys are rejected to catch typos such as "privat_key".
package configs

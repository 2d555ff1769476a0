// Package workflows orchestrates the oauth2keys commands.
//
// Each workflow generates key material, decides what to do with it given the
// current filesystem state and the user's flags, applies that decision and
// reports it. The cmd package only parses flags and prints results.
//
// # Decisions
//
// Every run ends in one Decision:
//
//   - skip-dry-run: nothing was written because --dry-run was given
//   - not-found: the .env file does not exist, nothing was written
//   - created: the material was written where nothing existed before
//   - exists-blocked: material already exists and --force was not given
//   - overwritten: existing material was replaced because of --force
//
// not-found and exists-blocked are ordinary outcomes, returned with a nil
// error. Errors are reserved for failures the user cannot fix with a flag:
// a broken random source, I/O failures, a .env file that defines the
// variable twice, an unusable key length.
//
// # Available Workflows
//
//   - GenerateEncryptionKey: 32-byte key into TRIKODER_OAUTH2_ENCRYPTION_KEY
//   - GenerateRSAPair: RSA public/private key files with mode 0600
//
// Runs that write something are recorded in the audit trail when one is configured.
package workflows

// Package audit records persistence decisions in a JSON Lines file.
//
// Every run that writes key material appends one entry with what happened
// and where. Secret values are never recorded; RSA pairs are identified by
// their public key fingerprint.
//
//	{"id":"5b0f...","ts":"2026-10-18T09:12:44.120391Z","op":"generate-rsa",
//	 "outcome":"overwritten","paths":["var/oauth/public.key","var/oauth/private.key"],
//	 "fingerprint":"SHA256:...","length":4096}
//
// The trail is disabled unless audit.log_path is set. Logging is best-effort:
// a failure to write the log never fails the operation that produced it.
package audit

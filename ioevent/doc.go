// Package ioevent is the thin external collaborator that reads the
// input CSV log into event.Event rows and writes the anonymized log
// back out, per the fixed CaseID,Activity,Timestamp / Case
// ID,Activity,Timestamp column contracts. The core pipeline never
// touches a file handle directly.
package ioevent

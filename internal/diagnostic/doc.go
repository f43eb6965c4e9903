// Package diagnostic provides structured errors, warnings and notices
// produced while registering and compiling schema entities.
//
// Key capabilities:
//   - Duplicate-registration notices (the call itself succeeds)
//   - Manifest validation errors
//   - Identifier collision reports
//   - Dangling type references found while compiling
package diagnostic

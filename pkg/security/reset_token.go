package security

import "bitwise74/task-api/pkg/util"

// resetTokenBytes random bytes give a 20 character hex token
const resetTokenBytes = 10

// MakeResetToken returns a fresh password reset token. Uniqueness against
// tokens already stored is not checked.
func MakeResetToken() (string, error) {
	return util.GenerateToken(resetTokenBytes)
}

/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package responder

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxCommentLength is the longest comment body GitHub accepts, in characters.
const MaxCommentLength = 65536

// ErrCommentTooLong is returned for comments GitHub would reject.
var ErrCommentTooLong = errors.New("comment exceeds GitHub's length limit")

// ValidateComment checks that comment can be posted. It never alters it.
func ValidateComment(comment string) error {
	if strings.TrimSpace(comment) == "" {
		return ErrEmptyComment
	}
	if n := utf8.RuneCountInString(comment); n > MaxCommentLength {
		return fmt.Errorf("%w: %d > %d characters", ErrCommentTooLong, n, MaxCommentLength)
	}
	return nil
}

// ValidateSignature reports whether comment carries the assistant's
// Signature. Unsigned comments are still posted.
func ValidateSignature(comment string) bool {
	return strings.Contains(comment, Signature)
}

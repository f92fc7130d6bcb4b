/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package responder

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateComment(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		wantErr error
	}{
		{name: "ok", comment: "Thanks!\n" + Signature},
		{name: "empty", comment: "", wantErr: ErrEmptyComment},
		{name: "whitespace", comment: "\n \t", wantErr: ErrEmptyComment},
		{name: "at limit", comment: strings.Repeat("a", MaxCommentLength)},
		{name: "multibyte at limit", comment: strings.Repeat("é", MaxCommentLength)},
		{name: "over limit", comment: strings.Repeat("a", MaxCommentLength+1), wantErr: ErrCommentTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComment(tt.comment)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateComment() = %v, wanted nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateComment() = %v, wanted %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSignature(t *testing.T) {
	if !ValidateSignature("Hi\n" + Signature) {
		t.Error("ValidateSignature() = false for a signed comment")
	}
	if ValidateSignature("Hi") {
		t.Error("ValidateSignature() = true for an unsigned comment")
	}
}

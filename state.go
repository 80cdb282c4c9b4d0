// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package signup

// ClaimView is the read-only side of ClaimState handed to scorers.
type ClaimView interface {
	Claimed(item int) bool
}

// ClaimState records which items have been delivered. An item moves from
// unclaimed to claimed once and never back.
type ClaimState struct {
	claimed []bool
	count   int
}

func NewClaimState(items int) *ClaimState {
	return &ClaimState{claimed: make([]bool, items)}
}

func (s *ClaimState) Claimed(item int) bool {
	return s.claimed[item]
}

// Claim marks the item as claimed and reports whether this call did it.
func (s *ClaimState) Claim(item int) bool {
	if s.claimed[item] {
		return false
	}
	s.claimed[item] = true
	s.count++
	return true
}

func (s *ClaimState) Count() int {
	return s.count
}

// SignupState records which providers have been committed.
type SignupState struct {
	signed []bool
	count  int
}

func NewSignupState(providers int) *SignupState {
	return &SignupState{signed: make([]bool, providers)}
}

func (s *SignupState) SignedUp(provider int) bool {
	return s.signed[provider]
}

func (s *SignupState) SignUp(provider int) bool {
	if s.signed[provider] {
		return false
	}
	s.signed[provider] = true
	s.count++
	return true
}

// Remaining is the number of providers not yet signed up.
func (s *SignupState) Remaining() int {
	return len(s.signed) - s.count
}

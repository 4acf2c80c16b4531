// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"strings"

	"github.com/bitmark-inc/bidtree/fault"
)

// DuplicatePolicy - action for inserting a key that is already present
type DuplicatePolicy int

// the policies
const (
	RejectDuplicates  DuplicatePolicy = iota // return fault.ErrBidIdExists
	ReplaceDuplicates DuplicatePolicy = iota // overwrite the existing record
	AllowDuplicates   DuplicatePolicy = iota // add another node to the right
)

var policyNames = map[DuplicatePolicy]string{
	RejectDuplicates:  "reject",
	ReplaceDuplicates: "replace",
	AllowDuplicates:   "allow",
}

// ParseDuplicatePolicy - policy from its configuration name
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for policy, name := range policyNames {
		if name == s {
			return policy, nil
		}
	}
	return RejectDuplicates, fault.ErrInvalidDuplicatePolicy
}

// String - configuration name of the policy
func (policy DuplicatePolicy) String() string {
	if name, ok := policyNames[policy]; ok {
		return name
	}
	return "unknown"
}

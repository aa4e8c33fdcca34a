package permission

// PermissionSet is the union of permission tokens across a user's roles,
// computed once per request and consulted by every privileged gate. An empty
// set denies all checks uniformly.
type PermissionSet struct {
	wildcard bool
	perms    map[string]struct{}
}

// NewPermissionSet builds the union of permissions across the given roles.
func NewPermissionSet(roles []*Role) PermissionSet {
	set := PermissionSet{perms: make(map[string]struct{})}
	for _, role := range roles {
		for _, p := range role.Permissions() {
			if p == Wildcard {
				set.wildcard = true
				continue
			}
			set.perms[p] = struct{}{}
		}
	}
	return set
}

// NewPermissionSetFromTokens builds a set from raw permission strings.
func NewPermissionSetFromTokens(tokens []string) PermissionSet {
	set := PermissionSet{perms: make(map[string]struct{})}
	for _, p := range tokens {
		if p == Wildcard {
			set.wildcard = true
			continue
		}
		set.perms[p] = struct{}{}
	}
	return set
}

// Has reports whether the set grants perm. The wildcard short-circuits all
// checks to granted.
func (s PermissionSet) Has(perm string) bool {
	if s.wildcard {
		return true
	}
	_, ok := s.perms[perm]
	return ok
}

// HasWildcard reports whether the set carries the grant-all token.
func (s PermissionSet) HasWildcard() bool {
	return s.wildcard
}

// IsEmpty reports whether the set grants nothing.
func (s PermissionSet) IsEmpty() bool {
	return !s.wildcard && len(s.perms) == 0
}

// Tokens returns the sorted-insensitive list of granted tokens, with the
// wildcard first when present. Used for the /api/auth/me payload.
func (s PermissionSet) Tokens() []string {
	tokens := make([]string, 0, len(s.perms)+1)
	if s.wildcard {
		tokens = append(tokens, Wildcard)
	}
	for p := range s.perms {
		tokens = append(tokens, p)
	}
	return tokens
}

// Package authz holds the authorization policy as a pure decision
// function. It is the authoritative contract: the row-level policies in
// migrations mirror it as a second enforcement layer, but this function is
// the one that is tested and the one the engine consults.
package authz

// ActorKind distinguishes anonymous callers from authenticated identities.
type ActorKind int

const (
	KindAnonymous ActorKind = iota
	KindAuthenticated
)

// Actor is the caller of an operation. IsAdmin reflects a registry lookup
// done before Decide is called, so the policy itself stays storage-free.
type Actor struct {
	Kind    ActorKind
	ID      int64
	IsAdmin bool
}

func Anonymous() Actor {
	return Actor{Kind: KindAnonymous}
}

func AuthenticatedUser(id int64, isAdmin bool) Actor {
	return Actor{Kind: KindAuthenticated, ID: id, IsAdmin: isAdmin}
}

type Action int

const (
	ReadFountain Action = iota
	ReadApprovedReview
	ReadPendingReview
	CreatePublicReview
	CreateAdminReview
	TransitionReview
	ManageFountain
	ManageAdminRegistry
)

func (a Action) String() string {
	switch a {
	case ReadFountain:
		return "read_fountain"
	case ReadApprovedReview:
		return "read_approved_review"
	case ReadPendingReview:
		return "read_pending_review"
	case CreatePublicReview:
		return "create_public_review"
	case CreateAdminReview:
		return "create_admin_review"
	case TransitionReview:
		return "transition_review"
	case ManageFountain:
		return "manage_fountain"
	case ManageAdminRegistry:
		return "manage_admin_registry"
	default:
		return "unknown"
	}
}

// requiresAdmin reports whether the action is an admin capability.
func (a Action) requiresAdmin() bool {
	switch a {
	case ReadPendingReview, CreateAdminReview, TransitionReview, ManageFountain, ManageAdminRegistry:
		return true
	}
	return false
}

// FountainRef carries the only fountain attribute the policy cares about.
type FountainRef struct {
	Active bool
}

// ReviewPayload describes a proposed review as the policy sees it. Author
// and Status are the literal values the caller is trying to write.
type ReviewPayload struct {
	Author          string
	Status          string
	HasExternalPost bool
}

// Resource is the object of an action. Fields are nil when the action has
// no object of that type.
type Resource struct {
	Fountain *FountainRef
	Review   *ReviewPayload
}

type Decision int

const (
	Deny Decision = iota
	Permit
)

func (d Decision) Permitted() bool { return d == Permit }

func (d Decision) String() string {
	if d == Permit {
		return "permit"
	}
	return "deny"
}

// Decide evaluates the rule list in priority order; the first matching rule
// wins and everything unmatched is denied.
func Decide(actor Actor, action Action, res Resource) Decision {
	// 1. Anyone may read an active fountain.
	if action == ReadFountain {
		if res.Fountain != nil && res.Fountain.Active {
			return Permit
		}
		return Deny
	}

	// 2. Anyone may read approved reviews.
	if action == ReadApprovedReview {
		return Permit
	}

	// 3. Admin capabilities require an authenticated registry member.
	if action.requiresAdmin() {
		if actor.Kind == KindAuthenticated && actor.IsAdmin {
			return Permit
		}
		return Deny
	}

	// 4. Public creation is permitted only for an exactly-pending,
	// exactly-public payload with no admin-only fields. Anything else is
	// denied outright, never silently corrected.
	if action == CreatePublicReview {
		p := res.Review
		if p == nil {
			return Deny
		}
		if p.HasExternalPost {
			return Deny
		}
		if p.Status != "pending" || p.Author != "public" {
			return Deny
		}
		return Permit
	}

	// 5. Default.
	return Deny
}

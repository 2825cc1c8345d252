package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	activeFountain := &FountainRef{Active: true}
	inactiveFountain := &FountainRef{Active: false}

	publicPending := &ReviewPayload{Author: "public", Status: "pending"}
	adminAuthored := &ReviewPayload{Author: "admin", Status: "pending"}
	preApproved := &ReviewPayload{Author: "public", Status: "approved"}
	withPost := &ReviewPayload{Author: "public", Status: "pending", HasExternalPost: true}

	anon := Anonymous()
	member := AuthenticatedUser(7, true)
	nonMember := AuthenticatedUser(8, false)

	tests := []struct {
		name   string
		actor  Actor
		action Action
		res    Resource
		want   Decision
	}{
		{"anonymous reads active fountain", anon, ReadFountain, Resource{Fountain: activeFountain}, Permit},
		{"anonymous denied inactive fountain", anon, ReadFountain, Resource{Fountain: inactiveFountain}, Deny},
		{"admin denied inactive fountain on the read path", member, ReadFountain, Resource{Fountain: inactiveFountain}, Deny},
		{"read fountain without a fountain", anon, ReadFountain, Resource{}, Deny},

		{"anonymous reads approved reviews", anon, ReadApprovedReview, Resource{}, Permit},
		{"admin reads approved reviews", member, ReadApprovedReview, Resource{}, Permit},

		{"anonymous denied pending queue", anon, ReadPendingReview, Resource{}, Deny},
		{"non-member denied pending queue", nonMember, ReadPendingReview, Resource{}, Deny},
		{"admin reads pending queue", member, ReadPendingReview, Resource{}, Permit},

		{"anonymous submits public pending review", anon, CreatePublicReview, Resource{Review: publicPending}, Permit},
		{"admin may also submit a public review", member, CreatePublicReview, Resource{Review: publicPending}, Permit},
		{"public submission claiming admin author", anon, CreatePublicReview, Resource{Review: adminAuthored}, Deny},
		{"public submission claiming approved status", anon, CreatePublicReview, Resource{Review: preApproved}, Deny},
		{"public submission carrying external post fields", anon, CreatePublicReview, Resource{Review: withPost}, Deny},
		{"public submission without a payload", anon, CreatePublicReview, Resource{}, Deny},

		{"anonymous denied admin review", anon, CreateAdminReview, Resource{Review: adminAuthored}, Deny},
		{"non-member denied admin review", nonMember, CreateAdminReview, Resource{Review: adminAuthored}, Deny},
		{"admin creates admin review", member, CreateAdminReview, Resource{Review: adminAuthored}, Permit},

		{"anonymous denied transition", anon, TransitionReview, Resource{}, Deny},
		{"non-member denied transition", nonMember, TransitionReview, Resource{}, Deny},
		{"admin transitions review", member, TransitionReview, Resource{}, Permit},

		{"anonymous denied fountain management", anon, ManageFountain, Resource{}, Deny},
		{"admin manages fountains", member, ManageFountain, Resource{}, Permit},

		{"non-member denied registry", nonMember, ManageAdminRegistry, Resource{}, Deny},
		{"admin manages registry", member, ManageAdminRegistry, Resource{}, Permit},

		{"unknown action defaults to deny", member, Action(99), Resource{}, Deny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.actor, tt.action, tt.res)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == Permit, got.Permitted())
		})
	}
}

// An authenticated actor whose IsAdmin flag is stale or forged still cannot
// reach admin capabilities; the flag is the only thing the policy trusts
// and the caller is responsible for resolving it from the registry.
func TestDecide_AdminFlagIsAuthoritative(t *testing.T) {
	claimed := Actor{Kind: KindAuthenticated, ID: 42, IsAdmin: false}

	for _, action := range []Action{ReadPendingReview, CreateAdminReview, TransitionReview, ManageFountain, ManageAdminRegistry} {
		assert.False(t, Decide(claimed, action, Resource{}).Permitted(), action.String())
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "create_public_review", CreatePublicReview.String())
	assert.Equal(t, "transition_review", TransitionReview.String())
	assert.Equal(t, "unknown", Action(99).String())
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "permit", Permit.String())
	assert.Equal(t, "deny", Deny.String())
}

package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/nongyiding-api/internal/domain"
	"github.com/jhoicas/nongyiding-api/internal/domain/access"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

func TestPoliticaPorRol(t *testing.T) {
	cases := []struct {
		role       entity.Role
		wantOrder  error
		wantLookup error
	}{
		{entity.RoleGuest, domain.ErrBindingRequired, domain.ErrBindingRequired},
		{entity.RoleCustomer, nil, domain.ErrPriceLookupForbidden},
		{entity.RoleAdmin, nil, nil},
		{entity.Role(""), domain.ErrBindingRequired, domain.ErrBindingRequired},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			if tc.wantOrder == nil {
				assert.NoError(t, access.CheckOrdering(tc.role))
			} else {
				assert.ErrorIs(t, access.CheckOrdering(tc.role), tc.wantOrder)
			}
			if tc.wantLookup == nil {
				assert.NoError(t, access.CheckPriceLookup(tc.role))
			} else {
				assert.ErrorIs(t, access.CheckPriceLookup(tc.role), tc.wantLookup)
			}
		})
	}
}

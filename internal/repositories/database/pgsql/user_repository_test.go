package pgsql

import (
	"testing"

	"github.com/dejmenek/pms-backend/internal/dto"
	"github.com/dejmenek/pms-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestIdentityDiff_CaseInsensitiveValuesAreNotChanges(t *testing.T) {
	current := models.User{
		ID:          "u-1",
		Username:    "Anna",
		Email:       "Anna@Example.com",
		PhoneNumber: strPtr("+48601234567"),
	}
	req := dto.UpdateUserRequest{
		ID:          "u-1",
		Username:    "anna",
		Email:       "ANNA@example.COM",
		PhoneNumber: strPtr("+48601234567"),
	}

	changes := identityDiff(current, req)

	assert.False(t, changes.username)
	assert.False(t, changes.email)
	assert.False(t, changes.phone)
}

func TestIdentityDiff_FlagsOnlyChangedFields(t *testing.T) {
	current := models.User{
		ID:       "u-1",
		Username: "anna",
		Email:    "anna@example.com",
	}

	testCases := []struct {
		name     string
		req      dto.UpdateUserRequest
		expected identityChanges
	}{
		{
			name:     "username changed",
			req:      dto.UpdateUserRequest{Username: "annika", Email: "anna@example.com"},
			expected: identityChanges{username: true},
		},
		{
			name:     "email changed",
			req:      dto.UpdateUserRequest{Username: "anna", Email: "annika@example.com"},
			expected: identityChanges{email: true},
		},
		{
			name:     "phone set from nil",
			req:      dto.UpdateUserRequest{Username: "anna", Email: "anna@example.com", PhoneNumber: strPtr("+48601234567")},
			expected: identityChanges{phone: true},
		},
		{
			name:     "everything changed",
			req:      dto.UpdateUserRequest{Username: "annika", Email: "annika@example.com", PhoneNumber: strPtr("+48601234567")},
			expected: identityChanges{username: true, email: true, phone: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, identityDiff(current, tc.req))
		})
	}
}

func TestIdentityDiff_PhoneCleared(t *testing.T) {
	current := models.User{Username: "anna", Email: "anna@example.com", PhoneNumber: strPtr("+48601234567")}
	req := dto.UpdateUserRequest{Username: "anna", Email: "anna@example.com", PhoneNumber: nil}

	changes := identityDiff(current, req)

	assert.True(t, changes.phone)
	assert.False(t, changes.username)
	assert.False(t, changes.email)
}

func TestRoleDiff_IdenticalSelectionIsEmpty(t *testing.T) {
	toAdd, toRemove := roleDiff([]string{"Admin", "Editor"}, []string{"admin", "EDITOR"})

	assert.Empty(t, toAdd)
	assert.Empty(t, toRemove)
}

func TestRoleDiff_SymmetricDifference(t *testing.T) {
	current := []string{"Admin", "Editor"}
	selected := []string{"editor", "Manager"}

	toAdd, toRemove := roleDiff(current, selected)

	assert.ElementsMatch(t, []string{"Manager"}, toAdd)
	assert.ElementsMatch(t, []string{"Admin"}, toRemove)
}

func TestRoleDiff_EmptySides(t *testing.T) {
	toAdd, toRemove := roleDiff(nil, []string{"User"})
	assert.ElementsMatch(t, []string{"User"}, toAdd)
	assert.Empty(t, toRemove)

	toAdd, toRemove = roleDiff([]string{"User"}, nil)
	assert.Empty(t, toAdd)
	assert.ElementsMatch(t, []string{"User"}, toRemove)
}

func TestSearchPattern_EscapesLikeMetacharacters(t *testing.T) {
	testCases := []struct {
		search   string
		expected string
	}{
		{"XPS", "%XPS%"},
		{"100%", `%100\%%`},
		{"user_name", `%user\_name%`},
		{`back\slash`, `%back\\slash%`},
		{"", "%%"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, searchPattern(tc.search), "search: %q", tc.search)
	}
}

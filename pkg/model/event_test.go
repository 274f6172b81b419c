package model_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takimet-io/takimet/pkg/model"
	"gorm.io/gorm/schema"
)

// Category links must go away with their event. RSVPs and comments keep their
// blocking foreign keys, so only the join table may cascade.
func TestEventCategoryLinksCascadeOnDelete(t *testing.T) {
	s, err := schema.Parse(&model.Event{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	relation, ok := s.Relationships.Relations["Categories"]
	require.True(t, ok)
	require.NotNil(t, relation.JoinTable)
	require.NotEmpty(t, relation.JoinTable.Relationships.Relations)

	for _, joinRelation := range relation.JoinTable.Relationships.Relations {
		constraint := joinRelation.ParseConstraint()
		require.NotNil(t, constraint, joinRelation.Name)
		assert.Equal(t, "CASCADE", constraint.OnDelete, joinRelation.Name)
	}
}

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignPositions(t *testing.T) {
	entities := []Entity{
		{ID: "resource.aws_vpc.main", Category: CategoryResource},
		{ID: "resource.aws_subnet.public", Category: CategoryResource},
		{ID: "var.env", Category: CategoryVariable},
		{ID: "resource.aws_instance.web", Category: CategoryResource},
		{ID: "output.id", Category: CategoryOutput},
	}

	AssignPositions(entities)

	for _, e := range entities {
		require.NotNil(t, e.Position, "entity %s has no position", e.ID)
	}

	// Categories take columns in first-seen order, entities take rows.
	assert.Equal(t, &Position{X: 0, Y: 0}, entities[0].Position)
	assert.Equal(t, &Position{X: 0, Y: 150}, entities[1].Position)
	assert.Equal(t, &Position{X: 250, Y: 0}, entities[2].Position)
	assert.Equal(t, &Position{X: 0, Y: 300}, entities[3].Position)
	assert.Equal(t, &Position{X: 500, Y: 0}, entities[4].Position)
}

func TestAssignPositionsDeterministic(t *testing.T) {
	build := func() []Entity {
		return []Entity{
			{ID: "a", Category: CategoryResource},
			{ID: "b", Category: CategoryData},
			{ID: "c", Category: CategoryResource},
		}
	}

	first := build()
	second := build()
	AssignPositions(first)
	AssignPositions(second)
	assert.Equal(t, first, second)
}

func TestAssignPositionsEmpty(t *testing.T) {
	assert.NotPanics(t, func() { AssignPositions(nil) })
}

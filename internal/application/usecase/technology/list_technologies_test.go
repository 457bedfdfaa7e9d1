package technology

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/adapters/persistence"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func TestListTechnologies_CategoryFilter(t *testing.T) {
	uc := NewListTechnologiesUseCase(persistence.NewStaticTechnologyRepo(), logger.NewNop())

	all, err := uc.Execute(context.Background(), ListTechnologiesInput{Category: "All"})
	require.NoError(t, err)
	assert.Len(t, all.Technologies, 24)

	aiml, err := uc.Execute(context.Background(), ListTechnologiesInput{Category: "AI/ML"})
	require.NoError(t, err)
	names := make([]string, 0, len(aiml.Technologies))
	for _, tech := range aiml.Technologies {
		names = append(names, tech.Name)
	}
	assert.Equal(t, []string{"OpenCV", "Numpy", "Pandas", "AI Tools"}, names)
}

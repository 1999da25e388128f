package idgenerator_test

import (
	"regexp"
	"testing"

	"github.com/fintechlabs/go-wallet-gate/internal/common/idgenerator"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	t.Run("created new id with prefix", func(t *testing.T) {
		generator := idgenerator.New()
		id := generator.Generate("tx")
		t.Log("id", id)
		assert.NotNil(t, id)
		assert.Regexp(t, regexp.MustCompile("^tx-"), id)
	})

	t.Run("created new id without prefix", func(t *testing.T) {
		generator := idgenerator.New()
		id := generator.Generate()
		assert.NotNil(t, id)
	})

	t.Run("ids are unique across calls", func(t *testing.T) {
		generator := idgenerator.New()
		seen := map[string]struct{}{}
		for i := 0; i < 100; i++ {
			id := generator.Generate("tx")
			_, dup := seen[id]
			assert.False(t, dup)
			seen[id] = struct{}{}
		}
	})
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/entropass/entropass/internal/model"
)

func TestCreateRejectsIncompleteAudit(t *testing.T) {
	repo := NewAuditRepository(nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		audit *model.GenerationAudit
	}{
		{"nil", nil},
		{"missing id", &model.GenerationAudit{Source: model.SourceCLI, CreatedAt: time.Now()}},
		{"missing source", &model.GenerationAudit{ID: "a", CreatedAt: time.Now()}},
		{"missing timestamp", &model.GenerationAudit{ID: "a", Source: model.SourceHTTP}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := repo.Create(ctx, tc.audit)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

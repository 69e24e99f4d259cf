package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViolatedUniqueConstraint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "column constraint",
			err:  errors.New("constraint failed: UNIQUE constraint failed: purchase_orders.number (2067)"),
			want: "purchase_orders.number",
		},
		{
			name: "expression index",
			err:  errors.New("constraint failed: UNIQUE constraint failed: index 'idx_nmr_drawing_number' (2067)"),
			want: "idx_nmr_drawing_number",
		},
		{
			name: "composite key reports the first column",
			err:  errors.New("constraint failed: UNIQUE constraint failed: nmr_revisions.nmr_id, nmr_revisions.rev (1555)"),
			want: "nmr_revisions.nmr_id",
		},
		{
			name: "foreign key is not a unique violation",
			err:  errors.New("constraint failed: FOREIGN KEY constraint failed (787)"),
			want: "",
		},
		{
			name: "unrelated error",
			err:  errors.New("database is locked (5)"),
			want: "",
		},
		{
			name: "nil",
			err:  nil,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, violatedUniqueConstraint(tt.err))
			require.Equal(t, tt.want != "", isUniqueViolation(tt.err))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	require.True(t, isForeignKeyViolation(errors.New("constraint failed: FOREIGN KEY constraint failed (787)")))
	require.False(t, isForeignKeyViolation(errors.New("constraint failed: UNIQUE constraint failed: projects.id (1555)")))
	require.False(t, isForeignKeyViolation(nil))
}

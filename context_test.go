package projection_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebbe/projection"
)

func newTestContext(t *testing.T) *projection.Context {
	t.Helper()
	ctx, err := projection.NewDefaultContext()
	require.NoError(t, err)
	t.Cleanup(ctx.Close)
	return ctx
}

func TestNewContext(t *testing.T) {
	ctx := newTestContext(t)

	geo := ctx.Geographic()
	require.NotNil(t, geo)
	assert.Equal(t, projection.RoleGeographic, geo.Role())
	assert.Equal(t, projection.DefaultGeographicDefinition, geo.String())

	prj := ctx.Projected()
	require.NotNil(t, prj)
	assert.Equal(t, projection.RoleProjected, prj.Role())
	assert.Equal(t, projection.DefaultProjectedDefinition, prj.String())
}

func TestNewContextInitErrors(t *testing.T) {
	tests := []struct {
		name       string
		geographic string
		projected  string
		role       projection.Role
		empty      bool
	}{
		{"empty geographic", "", projection.DefaultProjectedDefinition, projection.RoleGeographic, true},
		{"empty projected", projection.DefaultGeographicDefinition, "", projection.RoleProjected, true},
		{"unknown geographic", "+proj=doesnotexist +ellps=WGS84", projection.DefaultProjectedDefinition, projection.RoleGeographic, false},
		{"unknown projected", projection.DefaultGeographicDefinition, "+proj=doesnotexist +ellps=WGS84", projection.RoleProjected, false},
		{"both bad", "+proj=doesnotexist", "", projection.RoleGeographic, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := projection.NewContext(tt.geographic, tt.projected)
			require.Error(t, err)
			assert.Nil(t, ctx)

			var initErr *projection.InitError
			require.True(t, errors.As(err, &initErr), "got %T: %v", err, err)
			assert.Equal(t, tt.role, initErr.Role)
			assert.NotEmpty(t, initErr.Message)
			if tt.empty {
				assert.Equal(t, projection.ErrCodeEmptyDefinition, initErr.Code)
			} else {
				assert.NotZero(t, initErr.Code)
			}
			assert.Contains(t, err.Error(), tt.role.String())
		})
	}
}

func TestLiveDefinitions(t *testing.T) {
	before := projection.LiveDefinitions()
	ctx, err := projection.NewDefaultContext()
	require.NoError(t, err)
	assert.Equal(t, before+2, projection.LiveDefinitions())
	ctx.Close()
	assert.Equal(t, before, projection.LiveDefinitions())
}

func TestCloseTwice(t *testing.T) {
	ctx, err := projection.NewDefaultContext()
	require.NoError(t, err)

	ctx.Close()
	ctx.Close()

	assert.Nil(t, ctx.Geographic())
	assert.Nil(t, ctx.Projected())
}

func TestClosedContext(t *testing.T) {
	ctx, err := projection.NewDefaultContext()
	require.NoError(t, err)
	geo, prj := ctx.Geographic(), ctx.Projected()
	ctx.Close()

	_, err = ctx.ToWorld(projection.NewGeographicCoordinate(43, 20))
	assert.True(t, errors.Is(err, projection.ErrContextClosed), "got %v", err)

	_, err = ctx.ToGeographic(projection.WorldCoordinate{})
	assert.True(t, errors.Is(err, projection.ErrContextClosed), "got %v", err)

	_, err = ctx.Transform([]projection.Point3{{}}, geo, prj)
	assert.True(t, errors.Is(err, projection.ErrContextClosed), "got %v", err)

	_, err = geo.Info()
	assert.True(t, errors.Is(err, projection.ErrContextClosed), "got %v", err)
}

func TestInfo(t *testing.T) {
	info := projection.Info()
	assert.GreaterOrEqual(t, info.Major, 8)
	assert.NotEmpty(t, info.Version)

	ctx := newTestContext(t)

	pi, err := ctx.Projected().Info()
	require.NoError(t, err)
	assert.Equal(t, projection.RoleProjected, pi.Role)
	assert.Equal(t, "lcc", pi.ID)
	assert.True(t, pi.HasInverse)

	gi, err := ctx.Geographic().Info()
	require.NoError(t, err)
	assert.Equal(t, projection.RoleGeographic, gi.Role)
	assert.True(t, gi.HasInverse)
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "geographic", projection.RoleGeographic.String())
	assert.Equal(t, "projected", projection.RoleProjected.String())
	assert.Equal(t, "unknown", projection.Role(7).String())
}

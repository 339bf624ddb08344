// Package servicetest holds helpers shared by the service tests.
package servicetest

import (
	"context"
	"testing"

	"credopass/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// RunningManager expects one Do call, runs the callback with ctx and checks
// that it fails with wantErr (nil for success).
func RunningManager(t *testing.T, ctx context.Context, wantErr error) *mocks.MockManager {
	trm := mocks.NewMockManager(t)

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), wantErr)
		}).Return(wantErr).Once()

	return trm
}

// IdleManager returns a manager that fails the test if Do is called.
func IdleManager(t *testing.T) *mocks.MockManager {
	return mocks.NewMockManager(t)
}

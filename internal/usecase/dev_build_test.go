package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/3-lines-studio/gjallar/internal/config/logger"
	"github.com/3-lines-studio/gjallar/internal/core"
	"github.com/3-lines-studio/gjallar/internal/errors"
)

func newMockLog(ctrl *gomock.Controller) *logger.MockLogger {
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().WithComponent(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().Info().Return(nil).AnyTimes()
	log.EXPECT().Error().Return(nil).AnyTimes()
	log.EXPECT().Debug().Return(nil).AnyTimes()
	return log
}

func devArtifacts(entry string) []core.Artifact {
	return []core.Artifact{
		{Entry: entry, Path: core.DevNaming(entry) + ".js", Kind: core.KindScript, Contents: []byte(entry)},
		{Entry: entry, Path: core.DevNaming(entry) + ".js.map", Kind: core.KindSourceMap, Contents: []byte("{}")},
	}
}

func Test_DevBuildBeforeFirstBuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewDevBuildService(NewMockBundler(ctrl), newProject(t), newMockLog(ctrl))

	_, err := svc.Assets("landing")
	assert.ErrorIs(t, err, errors.ErrNoSuccessfulBuild)

	_, ok := svc.Asset("assets/landing.js")
	assert.False(t, ok)
}

func Test_DevBuildFailureAndRecovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := newProject(t)
	cfg.Build.Base = "/app/"

	bundler := NewMockBundler(ctrl)
	svc := NewDevBuildService(bundler, cfg, newMockLog(ctrl))

	bundler.EXPECT().Bundle(gomock.Any()).DoAndReturn(func(req core.BundleRequest) ([]core.Artifact, error) {
		assert.Equal(t, core.DevNaming(req.Entry), req.Naming)
		return devArtifacts(req.Entry), nil
	}).Times(2)
	require.NoError(t, svc.Rebuild(context.Background()))

	assets, err := svc.Assets("protected")
	require.NoError(t, err)
	assert.Equal(t, "/app/assets/protected.js", assets.Script)

	bundler.EXPECT().Bundle(gomock.Any()).DoAndReturn(func(req core.BundleRequest) ([]core.Artifact, error) {
		if req.Entry == "landing" {
			return nil, errors.ErrBundleFailed
		}
		return devArtifacts(req.Entry), nil
	}).Times(2)
	err = svc.Rebuild(context.Background())
	require.ErrorIs(t, err, errors.ErrBuildFailed)

	_, err = svc.Assets("protected")
	assert.ErrorIs(t, err, errors.ErrBuildFailed)
	assert.Equal(t, err, svc.Err())

	a, ok := svc.Asset("assets/landing.js")
	require.True(t, ok, "previous snapshot must stay served")
	assert.Equal(t, []byte("landing"), a.Contents)

	bundler.EXPECT().Bundle(gomock.Any()).DoAndReturn(func(req core.BundleRequest) ([]core.Artifact, error) {
		return devArtifacts(req.Entry), nil
	}).Times(2)
	require.NoError(t, svc.Rebuild(context.Background()))

	assert.NoError(t, svc.Err())
	assets, err = svc.Assets("landing")
	require.NoError(t, err)
	assert.Equal(t, "/app/assets/landing.js", assets.Script)
}

func Test_DevBuildConcurrentReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	bundler := NewMockBundler(ctrl)
	bundler.EXPECT().Bundle(gomock.Any()).DoAndReturn(func(req core.BundleRequest) ([]core.Artifact, error) {
		return devArtifacts(req.Entry), nil
	}).AnyTimes()

	svc := NewDevBuildService(bundler, newProject(t), newMockLog(ctrl))
	require.NoError(t, svc.Rebuild(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = svc.Rebuild(context.Background())
		}()
		go func() {
			defer wg.Done()
			_, ok := svc.Asset("assets/protected.js")
			assert.True(t, ok)
		}()
	}
	wg.Wait()
}

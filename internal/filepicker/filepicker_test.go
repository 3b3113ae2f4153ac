package filepicker_test

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokidex/internal/errors"
	"github.com/KirkDiggler/pokidex/internal/filepicker"
)

type call struct {
	name string
	args []string
}

type PickerTestSuite struct {
	suite.Suite
	ctx     context.Context
	calls   []call
	replies map[string]func() ([]byte, error)
}

func TestPickerSuite(t *testing.T) {
	suite.Run(t, new(PickerTestSuite))
}

func (s *PickerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.calls = nil
	s.replies = map[string]func() ([]byte, error){}
}

func (s *PickerTestSuite) picker(goos string) *filepicker.Picker {
	return &filepicker.Picker{
		GOOS: goos,
		Runner: func(_ context.Context, name string, args ...string) ([]byte, error) {
			s.calls = append(s.calls, call{name: name, args: args})
			reply, ok := s.replies[name]
			if !ok {
				return nil, exec.ErrNotFound
			}
			return reply()
		},
	}
}

func (s *PickerTestSuite) TestMacOS() {
	s.replies["osascript"] = func() ([]byte, error) { return []byte("/Users/ash/pikachu.png\n"), nil }

	path, err := s.picker("darwin").Pick(s.ctx)
	s.Require().NoError(err)
	s.Equal("/Users/ash/pikachu.png", path)
	s.Equal("-e", s.calls[0].args[0])
}

func (s *PickerTestSuite) TestWindowsCancelled() {
	s.replies["powershell"] = func() ([]byte, error) { return []byte("\r\n"), nil }

	_, err := s.picker("windows").Pick(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
}

func (s *PickerTestSuite) TestLinuxFallsBackToKDialog() {
	s.replies["kdialog"] = func() ([]byte, error) { return []byte("/home/ash/eevee.webp\n"), nil }

	path, err := s.picker("linux").Pick(s.ctx)
	s.Require().NoError(err)
	s.Equal("/home/ash/eevee.webp", path)
	s.Require().Len(s.calls, 2)
	s.Equal("zenity", s.calls[0].name)
	s.Contains(s.calls[0].args, "--title=Select a Pokémon image")
	s.Equal("kdialog", s.calls[1].name)
}

func (s *PickerTestSuite) TestLinuxNoDialogAvailable() {
	_, err := s.picker("linux").Pick(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Contains(err.Error(), "zenity")
}

func (s *PickerTestSuite) TestUnsupportedPlatform() {
	_, err := s.picker("plan9").Pick(s.ctx)
	s.Require().Error(err)
	s.Equal(errors.CodeUnimplemented, errors.GetCode(err))
	s.Empty(s.calls)
}

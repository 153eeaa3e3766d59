/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package phc

import (
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testFd = uintptr(3)

func openMockDevice(t *testing.T) (*Device, *MockClockSource) {
	ctrl := gomock.NewController(t)
	src := NewMockClockSource(ctrl)
	src.EXPECT().Open("/dev/ptp0").Return(testFd, nil)
	dev, err := Open(src, "/dev/ptp0")
	require.NoError(t, err)
	return dev, src
}

func TestFDToClockID(t *testing.T) {
	id := FDToClockID(0)
	require.Equal(t, int32(3), id&0x7)
	require.Equal(t, int32(^0<<3), id&^0x7)
	require.Equal(t, int32(-5), id)

	fd := uintptr(3)
	require.Equal(t, int32((^fd<<3)|3), FDToClockID(fd))
	require.Equal(t, int32(-29), FDToClockID(fd))
}

func TestFDToClockIDDeterministic(t *testing.T) {
	for _, fd := range []uintptr{0, 1, 3, 42, 1023, 1 << 20, ^uintptr(0)} {
		require.Equal(t, FDToClockID(fd), FDToClockID(fd))
		require.Equal(t, int32(3), FDToClockID(fd)&0x7)
	}
}

func TestOpen(t *testing.T) {
	dev, src := openMockDevice(t)
	require.Equal(t, "/dev/ptp0", dev.Path())
	require.Equal(t, testFd, dev.Fd())
	require.Equal(t, FDToClockID(testFd), dev.ClockID())

	src.EXPECT().Close(testFd).Return(nil)
	require.NoError(t, dev.Close())
}

func TestOpenFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockClockSource(ctrl)
	src.EXPECT().Open("/dev/ptp42").Return(uintptr(0), syscall.ENOENT)

	dev, err := Open(src, "/dev/ptp42")
	require.Nil(t, dev)
	var openErr *DeviceOpenError
	require.ErrorAs(t, err, &openErr)
	require.Equal(t, "/dev/ptp42", openErr.Path)
	require.ErrorIs(t, err, syscall.ENOENT)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Equal(t, `opening device "/dev/ptp42": no such file or directory`, err.Error())
}

func TestCloseOnce(t *testing.T) {
	dev, src := openMockDevice(t)
	src.EXPECT().Close(testFd).Return(nil).Times(1)

	require.NoError(t, dev.Close())
	require.ErrorIs(t, dev.Close(), os.ErrClosed)
}

func TestCloseError(t *testing.T) {
	dev, src := openMockDevice(t)
	src.EXPECT().Close(testFd).Return(syscall.EBADF)

	require.ErrorIs(t, dev.Close(), syscall.EBADF)
	// the handle is gone either way
	require.True(t, errors.Is(dev.Close(), os.ErrClosed))
}

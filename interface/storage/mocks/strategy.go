package mocks

import (
	"context"

	"github.com/airbusgeo/geoshift/interface/storage"
	"github.com/stretchr/testify/mock"
)

type Strategy struct {
	mock.Mock
}

func (_m *Strategy) Download(ctx context.Context, uri string) ([]byte, error) {
	ret := _m.Called(ctx, uri)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(context.Context, string) []byte); ok {
		r0 = rf(ctx, uri)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

func (_m *Strategy) Upload(ctx context.Context, uri string, data []byte) error {
	ret := _m.Called(ctx, uri, data)
	return ret.Error(0)
}

func (_m *Strategy) Exist(ctx context.Context, uri string) (bool, error) {
	ret := _m.Called(ctx, uri)
	return ret.Bool(0), ret.Error(1)
}

func (_m *Strategy) GetAttrs(ctx context.Context, uri string) (storage.Attrs, error) {
	ret := _m.Called(ctx, uri)
	return ret.Get(0).(storage.Attrs), ret.Error(1)
}

func (_m *Strategy) OpenReaderAt(ctx context.Context, uri string) (storage.ReaderAtCloser, error) {
	ret := _m.Called(ctx, uri)

	var r0 storage.ReaderAtCloser
	if rf, ok := ret.Get(0).(func(context.Context, string) storage.ReaderAtCloser); ok {
		r0 = rf(ctx, uri)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(storage.ReaderAtCloser)
	}

	return r0, ret.Error(1)
}

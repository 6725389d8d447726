package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"hotelbook/config"
	"hotelbook/infras/otel/mocks"
	s3Mocks "hotelbook/infras/s3/mocks"
	roomTypeMocks "hotelbook/internal/domains/roomtype/mocks"
	"hotelbook/internal/domains/roomtype/model"
	"hotelbook/internal/domains/roomtype/model/dto"
	"hotelbook/internal/domains/roomtype/service"
	cacheMocks "hotelbook/shared/cache/mocks"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo  *roomTypeMocks.MockRoomType
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.RoomType
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  roomTypeMocks.NewMockRoomType(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3)

	f.cache.EXPECT().Increment(gomock.Any(), "availability:generation", gomock.Any()).Return(int64(1), nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func deluxe() model.RoomType {
	return model.RoomType{
		ID:        "rt-deluxe",
		Name:      "Deluxe",
		BaseRate:  500000,
		Capacity:  2,
		Amenities: pq.StringArray{"wifi"},
		Images:    pq.StringArray{"https://cdn.example.com/room-types/a.jpg"},
		Active:    true,
	}
}

func TestRoomTypeService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, roomType model.RoomType) error {
				assert.NotEmpty(t, roomType.ID)
				assert.Equal(t, int64(500000), roomType.BaseRate)
				assert.True(t, roomType.Active)
				assert.Equal(t, "admin-1", roomType.CreatedBy)

				return nil
			})

		res, err := f.svc.Create(adminContext(), dto.CreateRoomTypeRequest{Name: "Deluxe", BaseRate: 500000, Capacity: 2})

		require.NoError(t, err)
		assert.Equal(t, "Deluxe", res.Name)
		assert.Empty(t, res.Images)
	})

	t.Run("repository error", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		_, err := f.svc.Create(adminContext(), dto.CreateRoomTypeRequest{Name: "Deluxe", Capacity: 2})

		assert.Error(t, err)
	})
}

func TestRoomTypeService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
		wantName  string
	}{
		{
			name: "cache hit",
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), "roomtype:get:rt-deluxe", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.RoomTypeResponse)
						res.Name = "Cached Deluxe"

						return nil
					})
			},
			wantName: "Cached Deluxe",
		},
		{
			name: "cache miss loads from repository",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe(), nil)
			},
			wantName: "Deluxe",
		},
		{
			name: "not found",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), "rt-deluxe")

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, res.Name)
		})
	}
}

func TestRoomTypeService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomType{deluxe()}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	require.Len(t, res.RoomTypes, 1)
	assert.Equal(t, []string{"wifi"}, res.RoomTypes[0].Amenities)
}

func TestRoomTypeService_Update(t *testing.T) {
	rate := int64(650000)

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe(), nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, rate, fields[model.FieldBaseRate])
				assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

				return nil
			})

		err := f.svc.Update(adminContext(), dto.UpdateRoomTypeRequest{BaseRate: &rate}, "rt-deluxe")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)

		err := f.svc.Update(adminContext(), dto.UpdateRoomTypeRequest{BaseRate: &rate}, "missing")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomTypeService_Deactivate(t *testing.T) {
	t.Run("active room type is switched off", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe(), nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, false, fields[model.FieldActive])

				return nil
			})

		assert.NoError(t, f.svc.Deactivate(adminContext(), "rt-deluxe"))
	})

	t.Run("already inactive is a no-op", func(t *testing.T) {
		f := newFixture(t)

		inactive := deluxe()
		inactive.Active = false

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)

		assert.NoError(t, f.svc.Deactivate(adminContext(), "rt-deluxe"))
	})
}

func TestRoomTypeService_UploadImage(t *testing.T) {
	header := &multipart.FileHeader{Filename: "pool.png", Size: 1024}
	newURL := "https://cdn.example.com/room-types/b.png"

	t.Run("success appends url", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe(), nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), "room-types", gomock.Any(), header).Return(newURL, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.UploadImage(adminContext(), "rt-deluxe", dto.UploadImageRequest{Image: header})

		require.NoError(t, err)
		assert.Equal(t, []string{"https://cdn.example.com/room-types/a.jpg", newURL}, res.Images)
	})

	t.Run("update failure removes uploaded object", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe(), nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(newURL, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
		f.s3.EXPECT().DeleteByURL(gomock.Any(), newURL).Return(nil)

		_, err := f.svc.UploadImage(adminContext(), "rt-deluxe", dto.UploadImageRequest{Image: header})

		assert.Error(t, err)
	})

	t.Run("upload failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe(), nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("s3 down"))

		_, err := f.svc.UploadImage(adminContext(), "rt-deluxe", dto.UploadImageRequest{Image: header})

		assert.Error(t, err)
	})
}

func TestRoomTypeService_RemoveImage(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		url := "https://cdn.example.com/room-types/a.jpg"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe(), nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, pq.StringArray{}, fields[model.FieldImages])

				return nil
			})
		f.s3.EXPECT().DeleteByURL(gomock.Any(), url).Return(nil)

		assert.NoError(t, f.svc.RemoveImage(adminContext(), "rt-deluxe", url))
	})

	t.Run("unknown image", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe(), nil)

		err := f.svc.RemoveImage(adminContext(), "rt-deluxe", "https://cdn.example.com/other.jpg")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

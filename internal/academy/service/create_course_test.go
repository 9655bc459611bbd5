package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/academy/models"
	dErrors "academy/pkg/domain-errors"
)

func (s *EngineSuite) TestCreateCourse() {
	ctx := context.Background()
	s.bootstrap()

	s.T().Run("creates with version 1 and zeroed counters", func(t *testing.T) {
		course, err := s.service.CreateCourse(ctx, s.authority, s.newCourseParams("rust-101"))
		require.NoError(t, err)
		assert.Equal(t, uint16(1), course.Version)
		assert.True(t, course.IsActive)
		assert.Zero(t, course.TotalEnrollments)
		assert.Zero(t, course.TotalCompletions)
		assert.Equal(t, s.creator, course.Creator)
		assert.Equal(t, s.authority, course.Authority)
		assert.Equal(t, s.now.Unix(), course.CreatedAt)
	})

	s.T().Run("duplicate course id is a conflict", func(t *testing.T) {
		_, err := s.service.CreateCourse(ctx, s.authority, s.newCourseParams("rust-101"))
		require.ErrorIs(t, err, ErrCourseExists)
	})

	s.T().Run("non-authority signer rejected", func(t *testing.T) {
		_, err := s.service.CreateCourse(ctx, s.creator, s.newCourseParams("rust-102"))
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	s.T().Run("validation guards", func(t *testing.T) {
		cases := map[string]models.CreateCourseParams{
			"empty course id": func() models.CreateCourseParams {
				p := s.newCourseParams("")
				return p
			}(),
			"course id too long": s.newCourseParams(strings.Repeat("x", 33)),
			"zero lesson count": func() models.CreateCourseParams {
				p := s.newCourseParams("rust-103")
				p.LessonCount = 0
				return p
			}(),
			"invalid difficulty": func() models.CreateCourseParams {
				p := s.newCourseParams("rust-104")
				p.Difficulty = 4
				return p
			}(),
		}
		for name, params := range cases {
			_, err := s.service.CreateCourse(ctx, s.authority, params)
			require.Error(t, err, name)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation), name)
		}
	})
}

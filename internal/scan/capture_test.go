package scan_test

import (
	"gallery/internal/fixture"
	"gallery/internal/scan"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCapture(t *testing.T) {
	t.Run("reads every supported tag", func(t *testing.T) {
		path := fixture.JPEG(t, filepath.Join(t.TempDir(), "shot.jpg"), fixture.WithExif(fixture.Exif{
			Model:            "X100V",
			LensModel:        "23mm F2",
			DateTimeOriginal: "2024:05:01 10:30:00",
			FNumber:          fixture.Rational{28, 10},
			FocalLength:      fixture.Rational{23, 1},
			ExposureTime:     fixture.Rational{1, 250},
			ISO:              400,
		}))

		c, err := scan.ReadCapture(path)

		require.NoError(t, err)
		require.NotNil(t, c.CaptureDate)
		assert.Equal(t, "2024-05-01 10:30:00", c.CaptureDate.Format("2006-01-02 15:04:05"))
		require.NotNil(t, c.FNumber)
		assert.InDelta(t, 2.8, *c.FNumber, 1e-9)
		require.NotNil(t, c.FocalLength)
		assert.InDelta(t, 23.0, *c.FocalLength, 1e-9)
		require.NotNil(t, c.ISO)
		assert.Equal(t, 400, *c.ISO)
		require.NotNil(t, c.ShutterSpeedDenominator)
		assert.Equal(t, 250, *c.ShutterSpeedDenominator)
		require.NotNil(t, c.CameraModel)
		assert.Equal(t, "X100V", *c.CameraModel)
		require.NotNil(t, c.LensModel)
		assert.Equal(t, "23mm F2", *c.LensModel)
	})

	t.Run("missing tags stay unset", func(t *testing.T) {
		path := fixture.JPEG(t, filepath.Join(t.TempDir(), "shot.jpg"), fixture.WithExif(fixture.Exif{
			Model: "X100V",
		}))

		c, err := scan.ReadCapture(path)

		require.NoError(t, err)
		require.NotNil(t, c.CameraModel)
		assert.Nil(t, c.FNumber)
		assert.Nil(t, c.CaptureDate)
		assert.Nil(t, c.LensModel)
	})

	t.Run("rounds non-unit exposure numerators", func(t *testing.T) {
		path := fixture.JPEG(t, filepath.Join(t.TempDir(), "shot.jpg"), fixture.WithExif(fixture.Exif{
			ExposureTime: fixture.Rational{10, 1250},
		}))

		c, err := scan.ReadCapture(path)

		require.NoError(t, err)
		require.NotNil(t, c.ShutterSpeedDenominator)
		assert.Equal(t, 125, *c.ShutterSpeedDenominator)
	})

	t.Run("long exposures have no denominator", func(t *testing.T) {
		path := fixture.JPEG(t, filepath.Join(t.TempDir(), "shot.jpg"), fixture.WithExif(fixture.Exif{
			ExposureTime: fixture.Rational{2, 1},
		}))

		c, err := scan.ReadCapture(path)

		require.NoError(t, err)
		assert.Nil(t, c.ShutterSpeedDenominator)
	})

	t.Run("jpeg without exif is empty, not an error", func(t *testing.T) {
		path := fixture.JPEG(t, filepath.Join(t.TempDir(), "plain.jpg"))

		c, err := scan.ReadCapture(path)

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("png is empty, not an error", func(t *testing.T) {
		path := fixture.PNG(t, filepath.Join(t.TempDir(), "plain.png"))

		c, err := scan.ReadCapture(path)

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := scan.ReadCapture(filepath.Join(t.TempDir(), "missing.jpg"))

		assert.Error(t, err)
	})
}

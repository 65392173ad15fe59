package server

import (
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/halftonelab/halftone/internal/database"
	"github.com/halftonelab/halftone/internal/dither"
	"github.com/halftonelab/halftone/internal/imageprocessing"
	"github.com/halftonelab/halftone/internal/logging"
)

// renderParams are the user-tunable knobs of one render request, also stored
// verbatim in the job history.
type renderParams struct {
	Kernel string  `json:"kernel"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Mode   string  `json:"mode,omitempty"`
	Blur   float64 `json:"blur,omitempty"`
	Seed   int64   `json:"seed,omitempty"`
}

func (s *Server) parseRenderParams(c *gin.Context) renderParams {
	p := renderParams{
		Kernel: c.DefaultQuery("kernel", s.settings.DefaultKernel),
		Mode:   c.DefaultQuery("mode", string(imageprocessing.FitContain)),
	}
	p.Width, _ = strconv.Atoi(c.Query("width"))
	p.Height, _ = strconv.Atoi(c.Query("height"))
	p.Blur, _ = strconv.ParseFloat(c.Query("blur"), 64)
	p.Seed, _ = strconv.ParseInt(c.Query("seed"), 10, 64)
	return p
}

// renderHandler decodes the uploaded image, runs the preparation pipeline and
// the selected kernel, and responds with a packed 1-bit PNG. The image comes
// either from a multipart field named "image" or from the raw request body.
func (s *Server) renderHandler(c *gin.Context) {
	start := time.Now()
	params := s.parseRenderParams(c)

	var reader io.Reader = c.Request.Body
	if file, _, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()
		reader = file
	}

	img, format, err := imageprocessing.Decode(reader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to decode image: " + err.Error()})
		return
	}

	m := imageprocessing.Prepare(img, imageprocessing.Options{
		Width:     params.Width,
		Height:    params.Height,
		Mode:      imageprocessing.FitMode(params.Mode),
		BlurSigma: float32(params.Blur),
	})

	var src dither.Rand
	if params.Seed != 0 {
		src = rand.New(rand.NewSource(params.Seed))
	} else {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if _, err := dither.Apply(m, params.Kernel, src); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   err.Error(),
			"kernels": dither.Names(),
		})
		return
	}

	data, err := imageprocessing.EncodeMonoPNG(m)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode result: " + err.Error()})
		return
	}

	s.recordJob(params, m, format, time.Since(start))

	logging.InfoWithComponent(logging.ComponentServer, "Rendered image",
		"kernel", params.Kernel, "width", m.Width, "height", m.Height,
		"format", format, "duration", time.Since(start))
	c.Data(http.StatusOK, "image/png", data)
}

func (s *Server) recordJob(params renderParams, m *dither.Image, format string, elapsed time.Duration) {
	if s.jobs == nil {
		return
	}

	opts, err := json.Marshal(params)
	if err != nil {
		opts = nil
	}
	job := &database.RenderJob{
		Kernel:       params.Kernel,
		Width:        m.Width,
		Height:       m.Height,
		SourceFormat: format,
		DurationMS:   elapsed.Milliseconds(),
		Options:      datatypes.JSON(opts),
	}
	if err := s.jobs.Record(job); err != nil {
		logging.ErrorWithComponent(logging.ComponentDatabase, "Failed to record render job", "error", err)
	}
}

// jobsHandler returns recent render history, newest first.
func (s *Server) jobsHandler(c *gin.Context) {
	if s.jobs == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "render history is disabled"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	jobs, err := s.jobs.Recent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query jobs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

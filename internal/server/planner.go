package server

import (
	_ "embed"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	appconfig "github.com/mohammad-safakhou/studyplan/config"
	"github.com/mohammad-safakhou/studyplan/internal/catalog"
	"github.com/mohammad-safakhou/studyplan/internal/export"
	"github.com/mohammad-safakhou/studyplan/internal/planner"
	"github.com/mohammad-safakhou/studyplan/internal/uploads"
)

//go:embed index.html
var indexHTML string

// effortSumMessage is the user-visible rejection for an effort total that
// is not 100.
const effortSumMessage = "Error: The total effort percentage must equal 100."

// PlanHandler serves the planning form, the catalog preview endpoint and
// the schedule generation endpoint. Each request runs the whole pipeline
// (upload, catalog, availability, allocation, assembly, export) to
// completion on request-local data.
type PlanHandler struct {
	Uploads uploads.Store
	Clock   planner.Clock
	Cfg     *appconfig.Config
	Log     *log.Logger
}

func (h *PlanHandler) Register(e *echo.Echo) {
	e.GET("/", h.index)
	e.POST("/load-csv", h.loadCSV)
	e.POST("/plan", h.plan)
}

func (h *PlanHandler) index(c echo.Context) error {
	return c.HTML(http.StatusOK, indexHTML)
}

// loadCSV accepts the catalog upload and echoes the parsed items back so
// the form can render per-item effort inputs. A missing file, empty
// filename or wrong extension yields an empty course list rather than an
// error.
func (h *PlanHandler) loadCSV(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil || fh.Filename == "" || !h.acceptedUpload(fh.Filename) {
		if err != nil {
			h.Log.Printf("load-csv without usable file: %v", err)
		}
		return c.JSON(http.StatusOK, catalogResponse{Courses: []catalog.StudyItem{}})
	}

	items, err := h.readCatalog(fh)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catalogResponse{Courses: items})
}

// plan runs the full planning pipeline and streams the export back as an
// attachment.
func (h *PlanHandler) plan(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "catalog file is required")
	}
	if fh.Filename == "" || !h.acceptedUpload(fh.Filename) {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("catalog must be a %s file", h.Cfg.Uploads.Extension))
	}
	items, err := h.readCatalog(fh)
	if err != nil {
		return err
	}

	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}

	sels := make([]planner.DaySelection, 0, len(form["days[]"]))
	for _, name := range form["days[]"] {
		day, ok := planner.ParseDay(name)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown day %q", name))
		}
		sels = append(sels, planner.DaySelection{
			Day:   day,
			Start: c.FormValue(name + "_start"),
			End:   c.FormValue(name + "_end"),
		})
	}

	now := h.Clock()
	windows, err := planner.BuildAvailability(sels, now, h.Clock)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	percents := make(map[string]float64, len(items))
	for _, item := range items {
		raw := c.FormValue(item.Name + "_effort")
		if raw == "" {
			continue
		}
		pct, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("bad effort percentage %q for %q", raw, item.Name))
		}
		percents[item.Name] = pct
	}

	alloc := planner.Allocate(items, percents)
	if err := alloc.ValidateTotal(h.Cfg.Planner.EffortEpsilon); err != nil {
		plansRejected.Inc()
		return c.String(http.StatusBadRequest, effortSumMessage)
	}

	blocks := planner.Assemble(windows, alloc)
	grid := planner.Organize(blocks)

	exp := export.ForFormat(c.FormValue("fileType"), h.Cfg.Export.PDFTitle)
	filename := h.Cfg.Export.Basename + "." + exp.Ext()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, exp.ContentType())
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	res.WriteHeader(http.StatusOK)
	if err := exp.Write(res, export.Plan{Blocks: blocks, Grid: grid}); err != nil {
		return err
	}
	plansGenerated.WithLabelValues(exp.Ext()).Inc()
	return nil
}

func (h *PlanHandler) acceptedUpload(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), h.Cfg.Uploads.Extension)
}

// readCatalog stores the upload and parses it into study items.
func (h *PlanHandler) readCatalog(fh *multipart.FileHeader) ([]catalog.StudyItem, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "reading upload")
	}
	defer src.Close()

	path, err := h.Uploads.Save(fh.Filename, src)
	if err != nil {
		if err == uploads.ErrTooLarge {
			return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
		}
		h.Log.Printf("saving upload %q: %v", fh.Filename, err)
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "storing upload")
	}

	rc, err := h.Uploads.Open(path)
	if err != nil {
		h.Log.Printf("reopening upload %q: %v", path, err)
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "reading upload")
	}
	defer rc.Close()

	items, err := catalog.Read(rc, h.Cfg.Planner.PagesPerHour)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return items, nil
}

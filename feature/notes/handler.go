package notes

import (
	"errors"
	"strings"

	"file-gateway/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ActivitySink receives fire-and-forget audit events. Implementations must
// never block and never surface failures to the caller.
type ActivitySink interface {
	Record(actor, action, detail, origin string)
}

// Handler handles HTTP requests for the file gateway.
type Handler struct {
	service  *Service
	activity ActivitySink
}

// NewHandler creates a new HTTP handler. sink may be nil when activity
// logging is disabled.
func NewHandler(service *Service, sink ActivitySink) *Handler {
	return &Handler{service: service, activity: sink}
}

// RegisterRoutes registers the gateway routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/notes")
	group.Post("/upload", h.HandleUpload)
	group.Get("/", h.HandleList)
	group.Get("/download-folder", h.HandleDownloadFolder)
	group.Get("/download-folder/+", h.HandleDownloadFolder)
	group.Get("/download/+", h.HandleDownload)
}

// HandleUpload stores one or many files.
// @Summary Upload files
// @Description Upload a single file (optionally renamed) or a folder batch preserving relative paths.
// @Tags notes
// @Accept mpfd
// @Produce json
// @Param files formData file true "Files to upload"
// @Param customName formData string false "Custom name for a single upload"
// @Param fileType formData string false "Declared content type, overrides the multipart part's own"
// @Param description formData string false "Free-text note recorded with the audit event"
// @Param batchUpload formData string false "Set to 'true' for folder uploads"
// @Param rootDirName formData string false "Declared folder root, collision-checked before upload"
// @Param paths formData string false "Relative path per file (repeated)"
// @Success 200 {object} map[string]interface{} "Uploaded keys"
// @Failure 400 {object} map[string]string "Bad input"
// @Failure 409 {object} map[string]string "Name already taken"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/notes/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	form, err := c.MultipartForm()
	if err != nil {
		return fiberError(c, fiber.StatusBadRequest, "invalid multipart form")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return fiberError(c, fiber.StatusBadRequest, "no files provided")
	}

	batch := c.FormValue("batchUpload") == "true"

	// Pre-flight duplicate check: advisory but rejects the common collision
	// before any upload work begins.
	if batch {
		root := strings.TrimSpace(c.FormValue("rootDirName"))
		if root != "" {
			taken, err := h.service.AnyWithPrefixExists(c.Context(), root)
			if err != nil {
				l.Error("Folder pre-flight check failed", zap.Error(err))
				return fiberError(c, fiber.StatusInternalServerError, "upload failed")
			}
			if taken {
				return fiberError(c, fiber.StatusConflict, "Folder name already taken: "+root)
			}
		}
	} else {
		candidate := strings.TrimSpace(c.FormValue("customName"))
		if candidate == "" {
			candidate = strings.TrimSpace(c.FormValue("originalName"))
		}
		if candidate != "" {
			taken, err := h.service.ObjectExists(c.Context(), candidate)
			if err != nil {
				l.Error("File pre-flight check failed", zap.Error(err))
				return fiberError(c, fiber.StatusInternalServerError, "upload failed")
			}
			if taken {
				return fiberError(c, fiber.StatusConflict, "File name already taken: "+candidate)
			}
		}
	}

	uploads := make([]Upload, 0, len(files))
	for _, fh := range files {
		uploads = append(uploads, FromMultipart(fh))
	}
	// A declared fileType beats whatever the multipart part claims.
	if ft := strings.TrimSpace(c.FormValue("fileType")); ft != "" {
		for i := range uploads {
			uploads[i].ContentType = ft
		}
	}

	var keys []string
	if batch {
		keys, err = h.service.UploadBatch(c.Context(), uploads, form.Value["paths"])
	} else {
		customName := c.FormValue("customName")
		for _, up := range uploads {
			var key string
			if key, err = h.service.UploadFile(c.Context(), up, customName); err != nil {
				break
			}
			keys = append(keys, key)
		}
	}
	if err != nil {
		l.Error("Upload failed", zap.Error(err), zap.Int("uploaded", len(keys)))
		return h.uploadError(c, err, keys)
	}

	detail := strings.Join(keys, ",")
	if desc := strings.TrimSpace(c.FormValue("description")); desc != "" {
		detail += " (" + desc + ")"
	}
	h.record(c, "UPLOAD", detail)
	return c.JSON(fiber.Map{
		"message": "Upload completed successfully",
		"keys":    keys,
	})
}

// uploadError maps a failed upload onto a response, reporting partial batch
// progress without leaking backend detail.
func (h *Handler) uploadError(c *fiber.Ctx, err error, uploaded []string) error {
	var be *BatchError
	if errors.As(err, &be) {
		status := statusForError(be.Cause)
		return c.Status(status).JSON(fiber.Map{
			"error":    "Batch upload failed at " + be.FailedName,
			"uploaded": be.Uploaded,
		})
	}

	status := statusForError(err)
	msg := "upload failed"
	if status == fiber.StatusConflict || status == fiber.StatusBadRequest {
		// User-correctable errors carry their own message.
		var e *Error
		if errors.As(err, &e) {
			msg = e.Message
		}
	}
	return c.Status(status).JSON(fiber.Map{
		"error":    msg,
		"uploaded": uploaded,
	})
}

// HandleList returns the keys in the bucket, optionally filtered.
// @Summary List files
// @Description List every stored key, filtered by a case-insensitive substring search.
// @Tags notes
// @Produce json
// @Param search query string false "Substring filter"
// @Success 200 {array} string "Stored keys"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/notes [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	keys, err := h.service.List(c.Context(), c.Query("search"))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Listing failed", zap.Error(err))
		return fiberError(c, fiber.StatusInternalServerError, "listing failed")
	}
	return c.JSON(keys)
}

// HandleDownload streams a single object.
// @Summary Download a file
// @Description Download the object stored under the given key.
// @Tags notes
// @Produce octet-stream
// @Param key path string true "Object key"
// @Success 200 {file} binary "Object content"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/notes/download/{key} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	key := c.Params("+")
	if key == "" {
		return fiberError(c, fiber.StatusBadRequest, "object key is empty")
	}

	obj, err := h.service.Download(c.Context(), key)
	if err != nil {
		if IsNotFound(err) {
			return fiberError(c, fiber.StatusNotFound, "no such file: "+key)
		}
		logger.WithRayID(h.service.logger, c).Error("Download failed", zap.Error(err))
		return fiberError(c, fiber.StatusInternalServerError, "download failed")
	}

	h.record(c, "DOWNLOAD", key)
	c.Set(fiber.HeaderContentType, fallbackContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+key+`"`)
	return c.SendStream(obj)
}

// HandleDownloadFolder streams every object under a prefix as a zip archive.
// @Summary Download a folder as zip
// @Description Build a zip archive of every object under the given prefix.
// @Tags notes
// @Produce octet-stream
// @Param prefix query string false "Folder prefix"
// @Param path query string false "Folder prefix (alternative parameter)"
// @Success 200 {file} binary "Zip archive"
// @Failure 400 {object} map[string]string "Empty prefix"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/notes/download-folder [get]
func (h *Handler) HandleDownloadFolder(c *fiber.Ctx) error {
	prefix := strings.TrimSpace(c.Query("prefix"))
	if prefix == "" {
		prefix = strings.TrimSpace(c.Query("path"))
	}
	if prefix == "" {
		prefix = c.Params("+")
	}
	if prefix == "" {
		return fiberError(c, fiber.StatusBadRequest, "folder prefix is empty")
	}

	// Folder prefixes always end in a single slash.
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	data, err := h.service.DownloadFolderAsZip(c.Context(), prefix)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Archive build failed",
			zap.String("prefix", prefix), zap.Error(err))
		return fiberError(c, fiber.StatusInternalServerError, "folder download failed")
	}

	h.record(c, "DOWNLOAD", prefix)
	filename := strings.ReplaceAll(prefix, "/", "") + ".zip"
	c.Set(fiber.HeaderContentType, fallbackContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func (h *Handler) record(c *fiber.Ctx, action, detail string) {
	if h.activity == nil {
		return
	}
	actor := c.Get("X-Username")
	if actor == "" {
		actor = "anonymous"
	}
	h.activity.Record(actor, action, detail, resolveOrigin(c))
}

// resolveOrigin prefers the first forwarded-for entry over the direct
// connection address.
func resolveOrigin(c *fiber.Ctx) string {
	if fwd := c.Get(fiber.HeaderXForwardedFor); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return first
		}
	}
	return c.IP()
}

func statusForError(err error) int {
	switch {
	case IsConflict(err):
		return fiber.StatusConflict
	case IsBadInput(err):
		return fiber.StatusBadRequest
	case IsNotFound(err):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func fiberError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

package services

import (
	"context"
	"errors"
	"sync"

	"ocr-translator/internal/config"
	"ocr-translator/internal/logger"
	"ocr-translator/internal/processing"
	"ocr-translator/models"
)

// GenericErrorMessage is shown as the result whenever a submission fails.
const GenericErrorMessage = config.MessageGenericError

// ErrSubmissionPending is returned by Submit while an earlier submission is in flight.
var ErrSubmissionPending = errors.New("a submission is already in progress")

// FormController owns the submission form state and drives a single request per submit.
// Callbacks are invoked without the lock held, from whichever goroutine called the method.
type FormController struct {
	processor processing.Processor

	mu      sync.Mutex
	state   models.SubmissionState
	pending bool
	last    *models.ProcessRequest

	// OnAlert is called with a user-facing message when validation fails.
	OnAlert func(message string)

	// OnResult is called with the text to show in the result modal.
	OnResult func(result string)

	// OnPendingChanged is called when a submission starts and when it finishes.
	OnPendingChanged func(pending bool)

	// OnRequestChanged is called with a copy of the request as its status changes.
	OnRequestChanged func(req models.ProcessRequest)
}

// NewFormController creates a controller in the initial state.
func NewFormController(processor processing.Processor) *FormController {
	return &FormController{
		processor: processor,
		state:     models.NewSubmissionState(),
	}
}

// SetProcessor replaces the processor used by later submissions.
func (f *FormController) SetProcessor(processor processing.Processor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.processor = processor
}

// State returns a copy of the current form state.
func (f *FormController) State() models.SubmissionState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Clone()
}

// Pending reports whether a submission is in flight.
func (f *FormController) Pending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending
}

// LastRequest returns the most recent request, or nil if nothing was submitted yet.
func (f *FormController) LastRequest() *models.ProcessRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.last == nil {
		return nil
	}
	r := *f.last
	return &r
}

// SetText sets the text to process.
func (f *FormController) SetText(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Text = value
}

// SetFile sets the uploaded file. nil removes it.
func (f *FormController) SetFile(file *models.Attachment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.File = file.Clone()
}

// SetAction selects OCR extraction or translation.
func (f *FormController) SetAction(action models.Action) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Action = action
}

// SetSourceLanguage sets the translation source; "auto" lets the endpoint detect it.
func (f *FormController) SetSourceLanguage(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.SourceLang = code
}

// SetTargetLanguage sets the translation target.
func (f *FormController) SetTargetLanguage(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.TargetLang = code
}

// AcceptPastedOrDroppedImage stores the first image among items as the pasted image.
// It returns false, leaving the state unchanged, when no item is an image.
func (f *FormController) AcceptPastedOrDroppedImage(items []models.TransferItem) (bool, error) {
	img, err := FirstImage(items)
	if err != nil {
		logger.Warn("Failed to read pasted image: %v", err)
		return false, err
	}
	if img == nil {
		logger.Debug("Paste/drop ignored: no image among %d item(s)", len(items))
		return false, nil
	}

	f.mu.Lock()
	f.state.PastedImage = img
	f.mu.Unlock()

	logger.Info("Accepted pasted image %s (%s, %d bytes)", img.Name, img.MimeType, len(img.Data))
	return true, nil
}

// Clear resets text, file, pasted image and languages. Action and result are kept.
func (f *FormController) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.ClearInputs()
}

// CloseResult hides the result modal. The result text is kept.
func (f *FormController) CloseResult() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.ResultVisible = false
}

// Submit validates the form and sends exactly one request.
//
// With no input it alerts and returns models.ErrNoInput. While another submit
// is in flight it returns ErrSubmissionPending. Otherwise the result (or
// GenericErrorMessage on failure) is stored, the modal is marked visible and
// OnResult fires; the processing error, if any, is returned for logging.
func (f *FormController) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.pending {
		f.mu.Unlock()
		return ErrSubmissionPending
	}
	if err := f.state.Validate(); err != nil {
		f.mu.Unlock()
		logger.Debug("Submit rejected: %v", err)
		if f.OnAlert != nil {
			f.OnAlert(config.MessageNoInput)
		}
		return err
	}
	snapshot := f.state.Clone()
	processor := f.processor
	req := models.NewProcessRequest(snapshot.Action)
	f.pending = true
	f.last = req
	f.mu.Unlock()

	f.notifyPending(true)

	f.updateRequest(req.Start)
	result, err := process(ctx, processor, snapshot, req.ID)
	if err != nil {
		logger.Error("Request %s failed: %v", req.ID, err)
		f.updateRequest(func() { req.Fail(err) })
		result = GenericErrorMessage
	} else {
		f.updateRequest(req.Complete)
		logger.Info("Request %s completed in %v", req.ID, req.Duration())
	}

	f.mu.Lock()
	f.state.Result = result
	f.state.ResultVisible = true
	f.pending = false
	f.mu.Unlock()

	f.notifyPending(false)
	if f.OnResult != nil {
		f.OnResult(result)
	}
	return err
}

func process(ctx context.Context, processor processing.Processor, snapshot models.SubmissionState, id string) (string, error) {
	if processor == nil {
		return "", errors.New("no processor configured")
	}
	req, err := BuildRequest(snapshot, id)
	if err != nil {
		return "", err
	}
	return processor.Process(ctx, req)
}

func (f *FormController) updateRequest(apply func()) {
	f.mu.Lock()
	apply()
	snapshot := *f.last
	f.mu.Unlock()

	if f.OnRequestChanged != nil {
		f.OnRequestChanged(snapshot)
	}
}

func (f *FormController) notifyPending(pending bool) {
	if f.OnPendingChanged != nil {
		f.OnPendingChanged(pending)
	}
}

package importclient

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const bytesPerMB = 1024 * 1024

// Run validates zipPath, logs in and uploads the archive, printing progress
// and the import result to out. Every failure is terminal and returned; the
// message has already been printed when Run returns.
func Run(ctx context.Context, opts Options, zipPath string, out io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	absPath, err := filepath.Abs(zipPath)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		fmt.Fprintf(out, "Error: File not found: %s\n", absPath)
		return fmt.Errorf("%w: %s", ErrFileNotFound, absPath)
	}

	client := New(opts)
	defer client.CloseIdleConnections()

	fmt.Fprint(out, "=== Document Upload Script ===\n\n")

	fmt.Fprintln(out, "Logging in...")
	logger.Debug("Logging in", zap.String("api_url", opts.APIURL), zap.String("email", opts.Email))
	token, err := client.Login(ctx, opts.Email, opts.Password)
	if err != nil {
		fmt.Fprintf(out, "Login failed: %v\n", err)
		logger.Debug("Login failed", zap.Error(err))
		return fmt.Errorf("login: %w", err)
	}
	fmt.Fprint(out, "Login successful!\n\n")

	fmt.Fprintf(out, "Uploading: %s\n", absPath)
	fmt.Fprintf(out, "File size: %.2f MB\n\n", float64(info.Size())/bytesPerMB)

	result, err := client.UploadArchive(ctx, token, absPath)
	if err != nil {
		fmt.Fprint(out, "\nUpload failed!\n")
		fmt.Fprintf(out, "Error: %v\n", err)
		if body, ok := ResponseBody(err); ok {
			fmt.Fprintf(out, "Response: %s\n", body)
		}
		logger.Debug("Upload failed", zap.Error(err))
		return fmt.Errorf("upload: %w", err)
	}

	logger.Debug("Upload finished",
		zap.Int("processed", result.Processed),
		zap.Int("errors", len(result.Errors)))

	if err := WriteResult(out, result); err != nil {
		return err
	}
	fmt.Fprint(out, "\nDone!\n")

	return nil
}

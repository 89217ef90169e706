// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
)

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// Serialize first to detect errors before writing headers
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}

// FormatFromContentType maps a request Content-Type to a readable format.
// An empty or unrecognized type is treated as JSON.
func FormatFromContentType(contentType string) Format {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return FormatJSON
	}
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml":
		return FormatYAML
	case "application/toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// DecodeRequest reads at most maxBytes of the request body into v, using the
// format named by the Content-Type header.
func DecodeRequest(r *http.Request, maxBytes int64, v any) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	body := io.LimitReader(r.Body, maxBytes+1)
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return fmt.Errorf("request body exceeds %d bytes", maxBytes)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("request body is empty")
	}

	reader, err := NewReader(FormatFromContentType(r.Header.Get("Content-Type")), bytes.NewReader(data))
	if err != nil {
		return err
	}
	return reader.Deserialize(v)
}

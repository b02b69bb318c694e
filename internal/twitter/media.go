package twitter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// DecodeImage turns base64 image input into raw bytes plus a MIME type.
// A "data:image/<kind>;base64," prefix, when present, is stripped and used
// to pick the MIME type among jpeg, png, gif, and webp; anything else
// (including no prefix at all) falls back to image/jpeg.
func DecodeImage(encoded string) ([]byte, string, error) {
	mimeType := "image/jpeg"
	payload := encoded

	if strings.HasPrefix(encoded, "data:") {
		head, rest, ok := strings.Cut(encoded, ",")
		if !ok {
			return nil, "", fmt.Errorf("malformed data uri")
		}
		payload = rest
		declared := strings.TrimSuffix(strings.TrimPrefix(head, "data:"), ";base64")
		switch declared {
		case "image/jpeg", "image/png", "image/gif", "image/webp":
			mimeType = declared
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode base64 image: %v", err)
	}
	return data, mimeType, nil
}

// UploadMedia pushes image bytes to the v1.1 media upload endpoint and
// returns the media id to reference from a tweet.
func (c *Client) UploadMedia(ctx context.Context, data []byte, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="media"; filename="media"`)
	header.Set("Content-Type", mimeType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("build upload form: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("build upload form: %v", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("build upload form: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL+"/1.1/media/upload.json", &buf)
	if err != nil {
		return "", fmt.Errorf("build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: raw}
	}

	var body struct {
		MediaIDString string `json:"media_id_string"`
		MediaID       int64  `json:"media_id"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", fmt.Errorf("decode upload response: %v", err)
	}
	if body.MediaIDString != "" {
		return body.MediaIDString, nil
	}
	if body.MediaID != 0 {
		return fmt.Sprintf("%d", body.MediaID), nil
	}
	return "", fmt.Errorf("media id missing from upload response")
}

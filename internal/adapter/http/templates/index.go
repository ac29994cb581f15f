package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Index renders the upload form. It posts to /api/process with fetch and
// previews the returned video and thumbnail.
func Index(maxSizeMB int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, indexHead); err != nil {
			return err
		}
		limit := templ.EscapeString(fmt.Sprintf("%d MB", maxSizeMB))
		if _, err := fmt.Fprintf(w, indexForm, limit); err != nil {
			return err
		}
		_, err := io.WriteString(w, indexScript)
		return err
	})
}

const indexHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>swapaudio</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 40rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
fieldset { border: 1px solid #ccc; border-radius: 6px; margin-bottom: 1rem; }
button { padding: .5rem 1.25rem; }
#status { margin: 1rem 0; min-height: 1.5rem; }
#status.error { color: #b00020; }
#result video, #result img { display: block; max-width: 100%; margin: .5rem 0; }
</style>
</head>
<body>
<h1>Replace the audio of a video</h1>
`

const indexForm = `<form id="upload" enctype="multipart/form-data">
<fieldset>
<legend>Files</legend>
<p><label>Video <input type="file" name="video" accept="video/*" required></label></p>
<p><label>Audio <input type="file" name="audio" accept="audio/*" required></label></p>
<p><small>Up to %s per request.</small></p>
</fieldset>
<button type="submit">Process</button>
</form>
<div id="status" role="status"></div>
<div id="result" hidden>
<video id="video" controls></video>
<img id="thumbnail" alt="Thumbnail">
<p><a id="download-video" download>Download video</a> &middot; <a id="download-thumbnail" download>Download thumbnail</a></p>
</div>
`

const indexScript = `<script>
const form = document.getElementById("upload");
const status = document.getElementById("status");
const result = document.getElementById("result");

form.addEventListener("submit", async (event) => {
  event.preventDefault();
  const button = form.querySelector("button");
  button.disabled = true;
  result.hidden = true;
  status.className = "";
  status.textContent = "Processing...";
  try {
    const response = await fetch("/api/process", { method: "POST", body: new FormData(form) });
    const body = await response.json();
    if (!response.ok) {
      throw new Error(body.error || response.statusText);
    }
    document.getElementById("video").src = body.videoUrl;
    document.getElementById("thumbnail").src = body.thumbnailUrl;
    document.getElementById("download-video").href = body.videoUrl;
    document.getElementById("download-thumbnail").href = body.thumbnailUrl;
    status.textContent = body.message;
    result.hidden = false;
  } catch (err) {
    status.className = "error";
    status.textContent = err.message;
  } finally {
    button.disabled = false;
  }
});
</script>
</body>
</html>
`

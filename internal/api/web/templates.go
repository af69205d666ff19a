package web

import "html/template"

const layout = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Image to Arabic Speech</title>
<style>
body { font-family: sans-serif; max-width: 42rem; margin: 2rem auto; padding: 0 1rem; }
label { display: block; font-weight: bold; margin-top: 1rem; }
textarea { width: 100%; font-size: 1.1rem; }
.rtl { direction: rtl; }
.error { color: #b00020; }
</style>
</head>
<body>
<h1>Image to Arabic Speech</h1>
<form action="/process" method="post" enctype="multipart/form-data">
  <input type="file" name="image" accept="image/*" required>
  <button type="submit">Submit</button>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{with .Result}}
<label for="caption">Caption</label>
<textarea id="caption" rows="2" readonly>{{.Caption}}</textarea>
<label for="translation">Translated Text</label>
<textarea id="translation" class="rtl" rows="2" readonly>{{.Translation}}</textarea>
<label>Generated Speech</label>
<audio controls src="/audio/{{.AudioName}}"></audio>
<p><a href="/results/{{.ID}}">Permalink</a></p>
{{end}}
</body>
</html>`

var pageTemplate = template.Must(template.New("page").Parse(layout))

package gin

import "html/template"

// pages holds the form and result views.
var pages = template.Must(template.New("pages").Parse(`
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Documentation Analyzer</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
.error { color: #b00020; }
.score-Excellent { color: #04814f; } .score-Good { color: #1f6fa8; }
.score-Fair { color: #9a6b00; } .score-Poor { color: #b00020; }
.revision { white-space: pre-wrap; background: #f6f8fa; padding: 1rem; }
</style>
</head>
<body>
<h1>Documentation Analyzer</h1>
{{end}}

{{define "form"}}
<form method="post" action="/analyze">
<p><label>Documentation URL <input type="url" name="url" value="{{.URL}}" required size="60"></label></p>
<fieldset><legend>Categories</legend>
{{range .Options}}<label><input type="checkbox" name="categories" value="{{.Value}}"{{if .Checked}} checked{{end}}> {{.Title}}</label><br>
{{end}}</fieldset>
{{if .CanRevise}}<p><label><input type="checkbox" name="revise" value="1"{{if .Revise}} checked{{end}}> Generate revised content</label></p>{{end}}
<p><button type="submit">Analyze</button></p>
</form>
{{end}}

{{define "index"}}{{template "head" .}}
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{template "form" .}}
</body></html>
{{end}}

{{define "result"}}{{template "head" .}}
<p>URL: <a href="{{.Result.URL}}">{{.Result.URL}}</a></p>
<p>Overall Score: <strong class="score-{{.Result.OverallScore}}">{{.Result.OverallScore}}</strong></p>
{{if .Result.Truncated}}<p><em>The page was truncated before analysis.</em></p>{{end}}
{{range .Sections}}
<h2>{{.Title}}: <span class="score-{{.Feedback.Score}}">{{.Feedback.Score}}</span></h2>
<h3>Issues</h3>
<ul>{{range .Feedback.Issues}}<li>{{.}}</li>{{end}}</ul>
<h3>Suggestions</h3>
<ul>{{range .Feedback.Suggestions}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{with .Revision}}
{{if .Warning}}<p class="error">{{.Warning}}</p>{{end}}
{{if .Content}}<h2>Revised Content</h2>
<pre class="revision">{{.Content}}</pre>{{end}}
{{end}}
<p><a href="/">Analyze another page</a></p>
</body></html>
{{end}}
`))

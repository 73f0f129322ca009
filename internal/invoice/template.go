package invoice

import (
	"html/template"
)

const dateLayout = "02/01/2006"

// notice is the single body template. Only the From block and the line items
// differ between the vendor and the seller variants.
var notice = template.Must(template.New("notice").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, Helvetica, sans-serif; color: #333333;">
<p>{{.Buyer.ContactName}} published a new Immutable Post: <a href="{{.PostURL}}">{{.PostURL}}</a></p>
<table width="100%" cellpadding="5">
<tr>
<td><h2>TAX INVOICE</h2></td>
<td align="right">Invoice #{{.Number}}<br>Date: {{.Date}}</td>
</tr>
</table>
<table width="100%" cellpadding="5">
<tr>
<td valign="top" width="50%"><strong>From</strong><br>{{template "party" .From}}</td>
<td valign="top" width="50%"><strong>Bill To</strong><br>{{template "party" .Buyer}}</td>
</tr>
</table>
<table width="100%" border="1" cellspacing="0" cellpadding="5">
<tr><th align="left">Description</th><th>Qty</th><th align="right">Amount</th></tr>
{{range .Items}}<tr class="{{.Kind}}"><td>{{.Description}}</td><td align="center">{{if .Quantity}}{{.Quantity}}{{end}}</td><td align="right">{{.Amount}}</td></tr>
{{end}}</table>
<hr>
</body>
</html>
{{define "party"}}{{.Name}}<br>
{{with .ContactName}}{{.}}<br>
{{end}}{{with .Address}}{{.}}<br>
{{end}}{{with .Country}}{{.}}<br>
{{end}}{{with .Phone}}{{.}}<br>
{{end}}{{with .Email}}{{.}}{{end}}{{end}}`))

// Package views renders the storefront's HTML pages. Templates are
// compiled once at init; every page shares the base layout with the
// navigation bar and the flash banner.
package views

import (
	"html/template"
	"net/http"

	"github.com/goldencrust/bakery/pkg/logger"
	"github.com/goldencrust/bakery/pkg/session"
)

const layoutTmpl = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} - Golden Crust Bakery</title>
</head>
<body>
<header>
  <a href="/">Golden Crust Bakery</a>
  <nav>
    <a href="/">Home</a>
    <a href="/products">Products</a>
    <a href="/blog">Blog</a>
    <a href="/cart">Cart</a>
    {{if .Authenticated}}
    <a href="/profile">Profile</a>
    <a href="/logout">Logout</a>
    {{else}}
    <a href="/login">Login</a>
    <a href="/register">Register</a>
    {{end}}
  </nav>
</header>
{{with .Flash}}<div class="flash flash-{{.Category}}">{{.Message}}</div>{{end}}
<main>
{{template "content" .}}
</main>
<footer>
  <p>&copy; Golden Crust Bakery. Baked fresh daily.</p>
</footer>
</body>
</html>{{end}}`

var pageTmpls = map[string]string{
	"index": `{{define "content"}}
<h1>Welcome to Golden Crust Bakery</h1>
<p>Artisan breads baked fresh every morning.</p>
{{with .Data.Message}}<p>{{.}}</p>{{end}}
<a href="/products">Browse our breads</a>
{{end}}`,

	"products": `{{define "content"}}
<h1>Our Breads</h1>
<ul class="products">
{{range .Data.Products}}
  <li>
    <img src="{{.ImageURL}}" alt="{{.Name}}">
    <h2>{{.Name}}</h2>
    <p class="variety">{{.Variety}}</p>
    <p>{{.Description}}</p>
    <p class="price">${{printf "%.2f" .Price}}</p>
  </li>
{{end}}
</ul>
{{end}}`,

	"blog": `{{define "content"}}
<h1>From the Bakery Blog</h1>
{{with .Data.ErrorMessage}}<p class="error">{{.}}</p>{{end}}
<ul class="posts">
{{range .Data.Posts}}
  <li>
    <a href="/blog/{{.Slug}}">{{.Title}}</a>
    <span class="date">{{.PublishDate.Format "January 2, 2006"}}</span>
  </li>
{{end}}
</ul>
{{end}}`,

	"blog_post": `{{define "content"}}
<article>
  <h1>{{.Data.Post.Title}}</h1>
  <p class="date">{{.Data.Post.PublishDate.Format "January 2, 2006"}}</p>
  <img src="{{.Data.Post.ImageURL}}" alt="{{.Data.Post.Title}}">
  <div class="body">{{.Data.Post.ContentHTML | safe}}</div>
</article>
<a href="/blog">Back to the blog</a>
{{end}}`,

	"cart": `{{define "content"}}
<h1>Your Cart</h1>
<p>Your cart is empty. Online ordering is coming soon!</p>
<a href="/products">Continue shopping</a>
{{end}}`,

	"register": `{{define "content"}}
<h1>Create an Account</h1>
<form method="post" action="/register">
  <label>Username <input type="text" name="username" required></label>
  <label>Email <input type="email" name="email" required></label>
  <label>Password <input type="password" name="password" required></label>
  <label>Confirm Password <input type="password" name="confirm_password" required></label>
  <button type="submit">Sign Up</button>
</form>
<p>Already have an account? <a href="/login">Log in</a></p>
{{end}}`,

	"login": `{{define "content"}}
<h1>Log In</h1>
<form method="post" action="/login{{with .Data.Next}}?next={{.}}{{end}}">
  <label>Username or Email <input type="text" name="identifier" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Log In</button>
</form>
<p>Need an account? <a href="/register">Sign up</a></p>
{{end}}`,

	"profile": `{{define "content"}}
<h1>Your Profile</h1>
<p>Signed in as <strong>{{.Data.User.Username}}</strong> ({{.Data.User.Email}})</p>
<form method="post" action="/profile">
  <label>Full Name <input type="text" name="full_name" value="{{.Data.User.FullName}}"></label>
  <label>Phone Number <input type="text" name="phone_number" value="{{.Data.User.PhoneNumber}}"></label>
  <label>Shipping Address <textarea name="shipping_address">{{.Data.User.ShippingAddress}}</textarea></label>
  <button type="submit">Save Changes</button>
</form>
{{end}}`,
}

var funcs = template.FuncMap{
	// Blog bodies are authored HTML, not user input.
	"safe": func(s string) template.HTML { return template.HTML(s) },
}

var pages = map[string]*template.Template{}

func init() {
	for name, src := range pageTmpls {
		t := template.Must(template.New(name).Funcs(funcs).Parse(layoutTmpl))
		pages[name] = template.Must(t.Parse(src))
	}
}

// Page carries everything the layout needs plus the page's own data.
type Page struct {
	Title         string
	Authenticated bool
	Flash         *session.FlashMessage
	Data          map[string]any
}

// Render writes the named page. Session state fills in the nav and the
// one-shot flash banner automatically.
func Render(w http.ResponseWriter, r *http.Request, name, title string, data map[string]any) {
	t, ok := pages[name]
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		logger.WithCtx(r.Context()).Error("views: unknown template", "name", name)
		return
	}

	p := Page{Title: title, Data: data}
	if data == nil {
		p.Data = map[string]any{}
	}
	sess := session.FromCtx(r)
	p.Authenticated = sess.Authenticated()
	if f, ok := sess.GetFlash(); ok {
		p.Flash = &f
		// Popping the flash mutates the session; persist before the
		// body is written so the banner really is one-shot.
		if err := sess.Save(w); err != nil {
			logger.WithCtx(r.Context()).Error("views: session save failed", "err", err)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "layout", p); err != nil {
		logger.WithCtx(r.Context()).Error("views: render failed", "name", name, "err", err)
	}
}

package controllers

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"inkwell/app/models"
	"inkwell/app/services"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
)

// PostController handles HTTP requests for blog posts. Every service
// failure maps to a flash message and a redirect; none escape as an
// unhandled fault.
type PostController struct {
	postService *services.PostService
	sessions    *sessions.CookieStore
	templates   map[string]*template.Template
}

// NewPostController creates a new PostController. sessionSecret signs the
// flash-message session cookie.
func NewPostController(postService *services.PostService, sessionSecret string) *PostController {
	return &PostController{
		postService: postService,
		sessions:    sessions.NewCookieStore([]byte(sessionSecret)),
		templates:   loadTemplates(),
	}
}

// Index handles listing all posts, newest first
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		pc.serverError(w, "Failed to fetch posts", err)
		return
	}

	data := struct {
		Posts   []*models.Post
		Flashes []Flash
	}{
		Posts:   posts,
		Flashes: pc.popFlashes(w, r),
	}
	pc.render(w, "index", data)
}

// New displays the form for creating a new post
func (pc *PostController) New(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Flashes []Flash
	}{
		Flashes: pc.popFlashes(w, r),
	}
	pc.render(w, "new", data)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		pc.addFlash(w, r, FlashDanger, "Failed to parse form.")
		pc.redirect(w, r, "/add")
		return
	}

	title := r.FormValue("title")
	content := r.FormValue("content")
	if title == "" || content == "" {
		pc.addFlash(w, r, FlashDanger, "Title and content are required.")
		pc.redirect(w, r, "/add")
		return
	}

	_, err := pc.postService.CreatePost(title, content)
	switch {
	case err == nil:
		pc.addFlash(w, r, FlashSuccess, "New blog post successfully created!")
		pc.redirect(w, r, "/")
	case errors.Is(err, services.ErrDuplicateTitle):
		pc.addFlash(w, r, FlashDanger,
			fmt.Sprintf("A blog post with the title %q already exists. Please choose a unique title.", title))
		pc.redirect(w, r, "/add")
	default:
		log.Printf("Failed to create post: %v", err)
		pc.addFlash(w, r, FlashDanger, "An error occurred while saving the post.")
		pc.redirect(w, r, "/add")
	}
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, ok := pc.lookupPost(w, r)
	if !ok {
		return
	}

	data := struct {
		Post    *models.Post
		Flashes []Flash
	}{
		Post:    post,
		Flashes: pc.popFlashes(w, r),
	}
	pc.render(w, "show", data)
}

// EditForm displays the form for editing an existing post
func (pc *PostController) EditForm(w http.ResponseWriter, r *http.Request) {
	post, ok := pc.lookupPost(w, r)
	if !ok {
		return
	}

	data := struct {
		Post    *models.Post
		Flashes []Flash
	}{
		Post:    post,
		Flashes: pc.popFlashes(w, r),
	}
	pc.render(w, "edit", data)
}

// Edit handles submitting changes to an existing post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	editPath := fmt.Sprintf("/edit/%d", id)

	if err := r.ParseForm(); err != nil {
		pc.addFlash(w, r, FlashDanger, "Failed to parse form.")
		pc.redirect(w, r, editPath)
		return
	}

	title := r.FormValue("title")
	content := r.FormValue("content")
	if title == "" || content == "" {
		pc.addFlash(w, r, FlashDanger, "Title and content are required.")
		pc.redirect(w, r, editPath)
		return
	}

	post, err := pc.postService.UpdatePost(id, title, content)
	switch {
	case err == nil:
		pc.addFlash(w, r, FlashSuccess, "Blog post successfully updated!")
		pc.redirect(w, r, fmt.Sprintf("/post/%d", post.ID))
	case errors.Is(err, services.ErrNotFound):
		http.NotFound(w, r)
	case errors.Is(err, services.ErrDuplicateTitle):
		pc.addFlash(w, r, FlashDanger,
			fmt.Sprintf("A post with the title %q already exists.", title))
		pc.redirect(w, r, editPath)
	default:
		log.Printf("Failed to update post %d: %v", id, err)
		pc.addFlash(w, r, FlashDanger, "An error occurred while saving changes.")
		pc.redirect(w, r, editPath)
	}
}

// Delete handles deleting a post after the key check
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	detailPath := fmt.Sprintf("/post/%d", id)

	if err := r.ParseForm(); err != nil {
		pc.addFlash(w, r, FlashDanger, "Failed to parse form.")
		pc.redirect(w, r, detailPath)
		return
	}

	submittedKey := r.FormValue("admin_key")
	if submittedKey == "" {
		pc.addFlash(w, r, FlashDanger, "An authorization key is required to delete a post.")
		pc.redirect(w, r, detailPath)
		return
	}

	post, err := pc.postService.DeletePost(id, submittedKey)
	switch {
	case err == nil:
		pc.addFlash(w, r, FlashSuccess, fmt.Sprintf("Post %q successfully deleted!", post.Title))
		pc.redirect(w, r, "/")
	case errors.Is(err, services.ErrNotFound):
		http.NotFound(w, r)
	case errors.Is(err, services.ErrDeleteKeyNotSet):
		pc.addFlash(w, r, FlashWarning, "Configuration error: no delete key is set on the server.")
		pc.redirect(w, r, detailPath)
	case errors.Is(err, services.ErrDeleteKeyMismatch):
		pc.addFlash(w, r, FlashDanger, "Authorization failed. The provided key is incorrect.")
		pc.redirect(w, r, detailPath)
	default:
		log.Printf("Failed to delete post %d: %v", id, err)
		pc.addFlash(w, r, FlashDanger, "An error occurred during deletion.")
		pc.redirect(w, r, detailPath)
	}
}

// lookupPost resolves the id route variable to a post, writing a 404 when
// either step fails
func (pc *PostController) lookupPost(w http.ResponseWriter, r *http.Request) (*models.Post, bool) {
	id, err := requestID(r)
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.NotFound(w, r)
		} else {
			pc.serverError(w, "Failed to fetch post", err)
		}
		return nil, false
	}
	return post, true
}

func (pc *PostController) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pc.templates[name].ExecuteTemplate(w, "layout", data); err != nil {
		log.Printf("Template error rendering %q: %v", name, err)
	}
}

func (pc *PostController) redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (pc *PostController) serverError(w http.ResponseWriter, message string, err error) {
	log.Printf("%s: %v", message, err)
	http.Error(w, message, http.StatusInternalServerError)
}

func requestID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

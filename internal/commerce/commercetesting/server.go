package commercetesting

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/samber/lo"
)

// Credentials accepted by Server.
const (
	APIKey   = "sk_test_seeder"
	Email    = "admin@medusa-test.com"
	Password = "supersecret"
	Token    = "jwt_test_seeder"
)

// Call is single request received by Server.
type Call struct {
	Route string
	Path  string
	Body  []byte
}

type failure struct {
	after  int
	status int
}

// Server is in-memory fake of commerce admin API.
type Server struct {
	*httptest.Server

	mu            sync.Mutex
	seq           int
	stores        []map[string]any
	salesChannels []map[string]any
	created       map[string][]string
	deleted       map[string]map[string]bool
	locationSets  map[string][]map[string]any
	sets          map[string]map[string]any
	uploaded      []string
	calls         []Call
	succeeded     map[string]int
	failures      map[string]failure
}

// NewServer starts Server with single store and registers its shutdown in t cleanup.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		stores: []map[string]any{{
			"id":   "store_01",
			"name": "Medusa Store",
			"supported_currencies": []any{
				map[string]any{"currency_code": "eur", "is_default": true},
			},
		}},
		created:      make(map[string][]string),
		deleted:      make(map[string]map[string]bool),
		locationSets: make(map[string][]map[string]any),
		sets:         make(map[string]map[string]any),
		succeeded:    make(map[string]int),
		failures:     make(map[string]failure),
	}

	mux := http.NewServeMux()
	s.handle(mux, "POST /auth/user/emailpass", s.login)
	s.handle(mux, "GET /admin/stores", s.listStores)
	s.handle(mux, "POST /admin/stores/{id}", s.updateStore)
	s.handle(mux, "GET /admin/sales-channels", s.listSalesChannels)
	s.handle(mux, "POST /admin/sales-channels", s.createSalesChannel)
	s.handle(mux, "POST /admin/regions", s.create("regions", "region"))
	s.handle(mux, "POST /admin/tax-regions", s.create("tax-regions", "tax_region"))
	s.handle(mux, "POST /admin/stock-locations", s.create("stock-locations", "stock_location"))
	s.handle(mux, "POST /admin/stock-locations/{id}/fulfillment-providers", s.link("stock-locations", "stock_location"))
	s.handle(mux, "POST /admin/stock-locations/{id}/sales-channels", s.link("stock-locations", "stock_location"))
	s.handle(mux, "POST /admin/stock-locations/{id}/fulfillment-sets", s.createFulfillmentSet)
	s.handle(mux, "POST /admin/fulfillment-sets/{id}/service-zones", s.createServiceZone)
	s.handle(mux, "POST /admin/shipping-profiles", s.create("shipping-profiles", "shipping_profile"))
	s.handle(mux, "POST /admin/shipping-options", s.create("shipping-options", "shipping_option"))
	s.handle(mux, "POST /admin/api-keys", s.create("api-keys", "api_key"))
	s.handle(mux, "POST /admin/api-keys/{id}/sales-channels", s.link("api-keys", "api_key"))
	s.handle(mux, "POST /admin/api-keys/{id}/revoke", s.link("api-keys", "api_key"))
	s.handle(mux, "POST /admin/product-categories", s.create("product-categories", "product_category"))
	s.handle(mux, "POST /admin/uploads", s.upload)
	s.handle(mux, "POST /admin/uploads/protected", s.upload)
	s.handle(mux, "POST /admin/product-types", s.create("product-types", "product_type"))
	s.handle(mux, "POST /admin/collections", s.create("collections", "collection"))
	s.handle(mux, "POST /admin/fashion/materials", s.create("fashion/materials", "material"))
	s.handle(mux, "POST /admin/fashion/colors", s.create("fashion/colors", "color"))
	s.handle(mux, "POST /admin/products", s.create("products", "product"))
	s.handle(mux, "DELETE /admin/{path...}", s.delete)

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)

	return s
}

// Fail makes route respond with status after it succeeded provided number of times.
// Route is request pattern, e.g. "POST /admin/products".
func (s *Server) Fail(route string, after, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures[route] = failure{after: after, status: status}
}

// Recover makes failing route respond normally again.
func (s *Server) Recover(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.failures, route)
}

// RemoveStores makes Server respond with empty store list.
func (s *Server) RemoveStores() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stores = nil
}

// AddSalesChannel adds existing sales channel and returns its id.
func (s *Server) AddSalesChannel(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	id := fmt.Sprintf("sc_existing_%03d", s.seq)
	s.salesChannels = append(s.salesChannels, map[string]any{"id": id, "name": name})

	return id
}

// Store returns current state of the first store.
func (s *Server) Store() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.stores) == 0 {
		return nil
	}
	return s.stores[0]
}

// Created returns number of entities ever created of resource, e.g. "products" or "fashion/colors".
func (s *Server) Created(resource string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.created[resource])
}

// Live returns number of created and not deleted entities of resource.
func (s *Server) Live(resource string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.created[resource]) - len(s.deleted[resource])
}

// Uploaded returns names of uploaded files in upload order.
func (s *Server) Uploaded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.uploaded...)
}

// Calls returns all received requests in arrival order.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Call(nil), s.calls...)
}

// Bodies returns decoded JSON bodies of requests received by route.
func (s *Server) Bodies(route string) []map[string]any {
	var bodies []map[string]any
	for _, call := range s.Calls() {
		if call.Route != route {
			continue
		}
		var body map[string]any
		_ = json.Unmarshal(call.Body, &body)
		bodies = append(bodies, body)
	}

	return bodies
}

func (s *Server) handle(mux *http.ServeMux, pattern string, h func(w http.ResponseWriter, r *http.Request, body []byte)) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_data", err.Error())
			return
		}

		if strings.HasPrefix(r.URL.Path, "/admin/") && !authorized(r) {
			respondError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		s.mu.Lock()
		s.calls = append(s.calls, Call{Route: pattern, Path: r.URL.Path, Body: body})
		f, failing := s.failures[pattern]
		if failing && s.succeeded[pattern] >= f.after {
			s.mu.Unlock()
			respondError(w, f.status, "unexpected_state", "injected failure")
			return
		}
		s.succeeded[pattern]++
		s.mu.Unlock()

		h(w, r, body)
	})
}

func authorized(r *http.Request) bool {
	if user, _, ok := r.BasicAuth(); ok && user == APIKey {
		return true
	}
	return r.Header.Get("Authorization") == "Bearer "+Token
}

func (s *Server) login(w http.ResponseWriter, _ *http.Request, body []byte) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal(body, &creds); err != nil || creds.Email != Email || creds.Password != Password {
		respondError(w, http.StatusUnauthorized, "unauthorized", "Invalid email or password")
		return
	}

	respond(w, map[string]any{"token": Token})
}

func (s *Server) listStores(w http.ResponseWriter, _ *http.Request, _ []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	respond(w, map[string]any{"stores": lo.Ternary(s.stores == nil, []map[string]any{}, s.stores)})
}

func (s *Server) updateStore(w http.ResponseWriter, r *http.Request, body []byte) {
	fields, ok := decodeFields(w, body)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	store, found := lo.Find(s.stores, func(st map[string]any) bool { return st["id"] == r.PathValue("id") })
	if !found {
		respondError(w, http.StatusNotFound, "not_found", "Store was not found")
		return
	}
	for k, v := range fields {
		store[k] = v
	}

	respond(w, map[string]any{"store": store})
}

func (s *Server) listSalesChannels(w http.ResponseWriter, r *http.Request, _ []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := r.URL.Query().Get("name")
	channels := lo.Filter(s.salesChannels, func(sc map[string]any, _ int) bool {
		return (name == "" || sc["name"] == name) && !s.deleted["sales-channels"][sc["id"].(string)]
	})

	respond(w, map[string]any{"sales_channels": channels})
}

func (s *Server) createSalesChannel(w http.ResponseWriter, _ *http.Request, body []byte) {
	fields, ok := decodeFields(w, body)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fields["id"] = s.newID("sales-channels")
	s.salesChannels = append(s.salesChannels, fields)

	respond(w, map[string]any{"sales_channel": fields})
}

// create echoes request fields with new id under envelope key.
func (s *Server) create(resource, envelope string) func(w http.ResponseWriter, r *http.Request, body []byte) {
	return func(w http.ResponseWriter, _ *http.Request, body []byte) {
		fields, ok := decodeFields(w, body)
		if !ok {
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		fields["id"] = s.newID(resource)
		switch resource {
		case "api-keys":
			fields["token"] = fmt.Sprintf("pk_%d", s.seq)
		case "products":
			variants, _ := fields["variants"].([]any)
			for _, v := range variants {
				if variant, ok := v.(map[string]any); ok {
					s.seq++
					variant["id"] = fmt.Sprintf("variant_%03d", s.seq)
				}
			}
		}

		respond(w, map[string]any{envelope: fields})
	}
}

// link checks that parent entity exists and responds with it.
func (s *Server) link(resource, envelope string) func(w http.ResponseWriter, r *http.Request, body []byte) {
	return func(w http.ResponseWriter, r *http.Request, _ []byte) {
		s.mu.Lock()
		defer s.mu.Unlock()

		id := r.PathValue("id")
		if !s.exists(resource, id) {
			respondError(w, http.StatusNotFound, "not_found", fmt.Sprintf("%s with id %s was not found", envelope, id))
			return
		}

		respond(w, map[string]any{envelope: map[string]any{"id": id}})
	}
}

func (s *Server) createFulfillmentSet(w http.ResponseWriter, r *http.Request, body []byte) {
	fields, ok := decodeFields(w, body)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	locationID := r.PathValue("id")
	if !s.exists("stock-locations", locationID) {
		respondError(w, http.StatusNotFound, "not_found", "Stock location was not found")
		return
	}

	fields["id"] = s.newID("fulfillment-sets")
	fields["service_zones"] = []any{}
	s.sets[fields["id"].(string)] = fields
	s.locationSets[locationID] = append(s.locationSets[locationID], fields)

	respond(w, map[string]any{"stock_location": map[string]any{
		"id":               locationID,
		"fulfillment_sets": s.locationSets[locationID],
	}})
}

func (s *Server) createServiceZone(w http.ResponseWriter, r *http.Request, body []byte) {
	fields, ok := decodeFields(w, body)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, found := s.sets[r.PathValue("id")]
	if !found || !s.exists("fulfillment-sets", r.PathValue("id")) {
		respondError(w, http.StatusNotFound, "not_found", "Fulfillment set was not found")
		return
	}

	fields["id"] = s.newID("service-zones")
	set["service_zones"] = append(set["service_zones"].([]any), fields)

	respond(w, map[string]any{"fulfillment_set": set})
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request, body []byte) {
	r.Body = io.NopCloser(strings.NewReader(string(body)))
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_data", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	files := make([]map[string]any, 0, len(r.MultipartForm.File["files"]))
	for _, header := range r.MultipartForm.File["files"] {
		s.uploaded = append(s.uploaded, header.Filename)
		files = append(files, map[string]any{
			"id":  s.newID("uploads"),
			"url": s.URL + "/static/" + header.Filename,
		})
	}

	respond(w, map[string]any{"files": files})
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request, _ []byte) {
	path := r.PathValue("path")
	ix := strings.LastIndex(path, "/")
	if ix < 0 {
		respondError(w, http.StatusNotFound, "not_found", "Not found")
		return
	}
	resource, id := path[:ix], path[ix+1:]

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.exists(resource, id) {
		respondError(w, http.StatusNotFound, "not_found", fmt.Sprintf("%s with id %s was not found", resource, id))
		return
	}
	if s.deleted[resource] == nil {
		s.deleted[resource] = make(map[string]bool)
	}
	s.deleted[resource][id] = true

	respond(w, map[string]any{"id": id, "object": resource, "deleted": true})
}

// exists must be called with mu held.
func (s *Server) exists(resource, id string) bool {
	return lo.Contains(s.created[resource], id) && !s.deleted[resource][id]
}

// newID must be called with mu held.
func (s *Server) newID(resource string) string {
	s.seq++
	id := fmt.Sprintf("%s_%03d", strings.ReplaceAll(resource, "/", "_"), s.seq)
	s.created[resource] = append(s.created[resource], id)

	return id
}

func decodeFields(w http.ResponseWriter, body []byte) (map[string]any, bool) {
	fields := make(map[string]any)
	if err := json.Unmarshal(body, &fields); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_data", err.Error())
		return nil, false
	}

	return fields, true
}

func respond(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, errType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"type": errType, "message": message})
}

package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"school-health-records/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil,
		SeedData:     true,
	}))
}

func TestHTTP_RequiresAuth(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	// Sin X-Debug-User-ID no hay claims: 401 en todo lo protegido.
	for _, path := range []string{"/medical-events", "/medical-events/stats", "/notifications", "/students", "/campaigns"} {
		st, _ := doReq(t, ts.URL, "GET", path, "", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("GET %s without auth: expected 401, got %d", path, st)
		}
	}

	// El catálogo es público: lo consumen los formularios antes de autenticarse.
	st, _ := doReq(t, ts.URL, "GET", "/catalog", "", "", nil)
	if st != http.StatusOK {
		t.Fatalf("GET /catalog: expected 200, got %d", st)
	}

	// Health también.
	st, _ = doReq(t, ts.URL, "GET", "/health", "", "", nil)
	if st != http.StatusOK {
		t.Fatalf("GET /health: expected 200, got %d", st)
	}
}

func TestHTTP_SeededEvents_ReadPaths(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	// Los 5 eventos de muestra, en orden de inserción.
	st, body := doReq(t, ts.URL, "GET", "/medical-events", "nurse-1", "nurse", nil)
	if st != http.StatusOK {
		t.Fatalf("list events: expected 200, got %d body=%s", st, body)
	}
	var events []eventJSON
	mustUnmarshal(t, body, &events)
	if len(events) != 5 {
		t.Fatalf("expected 5 seeded events, got %d", len(events))
	}
	for i, e := range events {
		if e.ID != i+1 {
			t.Fatalf("position %d: expected id %d, got %d", i, i+1, e.ID)
		}
	}

	// Detalle por id.
	st, body = doReq(t, ts.URL, "GET", "/medical-events/3", "nurse-1", "nurse", nil)
	if st != http.StatusOK {
		t.Fatalf("get event 3: expected 200, got %d body=%s", st, body)
	}
	var e3 eventJSON
	mustUnmarshal(t, body, &e3)
	if e3.StudentName != "Sophia Davis" || e3.Type != "Medical Condition" || e3.Severity != "Serious" {
		t.Fatalf("unexpected event 3: %+v", e3)
	}

	// id desconocido: 404.
	st, _ = doReq(t, ts.URL, "GET", "/medical-events/999", "nurse-1", "nurse", nil)
	if st != http.StatusNotFound {
		t.Fatalf("get unknown event: expected 404, got %d", st)
	}

	// Rango de fechas inclusivo: 15..19 de mayo son los eventos 2, 3 y 4.
	st, body = doReq(t, ts.URL, "GET", "/medical-events?from=2025-05-15&to=2025-05-19", "nurse-1", "nurse", nil)
	if st != http.StatusOK {
		t.Fatalf("range filter: expected 200, got %d body=%s", st, body)
	}
	mustUnmarshal(t, body, &events)
	if len(events) != 3 || events[0].ID != 2 || events[2].ID != 4 {
		t.Fatalf("expected events [2 3 4] in range, got %+v", events)
	}

	// Filtros combinados con AND.
	st, body = doReq(t, ts.URL, "GET", "/medical-events?severity=Moderate&follow_up_required=true", "nurse-1", "nurse", nil)
	if st != http.StatusOK {
		t.Fatalf("combined filter: expected 200, got %d body=%s", st, body)
	}
	mustUnmarshal(t, body, &events)
	if len(events) != 2 {
		t.Fatalf("expected 2 moderate follow-ups, got %+v", events)
	}

	// Fecha malformada: 400.
	st, _ = doReq(t, ts.URL, "GET", "/medical-events?from=15-05-2025", "nurse-1", "nurse", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("bad from: expected 400, got %d", st)
	}
}

func TestHTTP_Stats(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/medical-events/stats", "nurse-1", "nurse", nil)
	if st != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d body=%s", st, body)
	}

	var stats struct {
		TotalEvents      int            `json:"total_events"`
		CountByType      map[string]int `json:"count_by_type"`
		CountBySeverity  map[string]int `json:"count_by_severity"`
		CountByStatus    map[string]int `json:"count_by_status"`
		OpenEvents       int            `json:"open_events"`
		FollowUpRequired int            `json:"follow_up_required"`
	}
	mustUnmarshal(t, body, &stats)

	if stats.TotalEvents != 5 {
		t.Fatalf("expected total 5, got %d", stats.TotalEvents)
	}
	if stats.OpenEvents != 1 || stats.FollowUpRequired != 2 {
		t.Fatalf("expected 1 open / 2 follow-ups, got %d / %d", stats.OpenEvents, stats.FollowUpRequired)
	}
	if stats.CountBySeverity["Moderate"] != 2 {
		t.Fatalf("expected 2 moderate, got %+v", stats.CountBySeverity)
	}

	// Acotado a un solo día.
	st, body = doReq(t, ts.URL, "GET", "/medical-events/stats?from=2025-05-20&to=2025-05-20", "nurse-1", "nurse", nil)
	if st != http.StatusOK {
		t.Fatalf("stats ranged: expected 200, got %d body=%s", st, body)
	}
	mustUnmarshal(t, body, &stats)
	if stats.TotalEvents != 1 || stats.CountByType["Infectious Disease"] != 1 {
		t.Fatalf("expected only the chickenpox event on 05-20, got %+v", stats)
	}
}

func TestHTTP_NotificationsFeed(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	// Del seed: 5 (Severe abierto), 4 y 2 (seguimiento), más reciente primero.
	st, body := doReq(t, ts.URL, "GET", "/notifications", "nurse-1", "nurse", nil)
	if st != http.StatusOK {
		t.Fatalf("notifications: expected 200, got %d body=%s", st, body)
	}
	var feed []eventJSON
	mustUnmarshal(t, body, &feed)

	wantIDs := []int{5, 4, 2}
	if len(feed) != len(wantIDs) {
		t.Fatalf("expected %d feed items, got %d: %+v", len(wantIDs), len(feed), feed)
	}
	for i, id := range wantIDs {
		if feed[i].ID != id {
			t.Fatalf("feed position %d: expected id %d, got %d", i, id, feed[i].ID)
		}
	}

	// limit trunca los más antiguos.
	st, body = doReq(t, ts.URL, "GET", "/notifications?limit=1", "nurse-1", "nurse", nil)
	if st != http.StatusOK {
		t.Fatalf("notifications limit: expected 200, got %d body=%s", st, body)
	}
	mustUnmarshal(t, body, &feed)
	if len(feed) != 1 || feed[0].ID != 5 {
		t.Fatalf("expected only event 5, got %+v", feed)
	}
}

func TestHTTP_EventLifecycle_Roles(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	// Un apoderado puede leer pero no registrar.
	st, _ := doReq(t, ts.URL, "POST", "/medical-events", "parent-1", "parent", map[string]any{
		"student_name": "Liam Johnson",
		"type":         "Injury",
		"description":  "should fail",
	})
	if st != http.StatusForbidden {
		t.Fatalf("create by parent: expected 403, got %d", st)
	}

	// La enfermera crea; con 5 sembrados el nuevo id es 6.
	st, body := doReq(t, ts.URL, "POST", "/medical-events", "nurse-1", "nurse", map[string]any{
		"student_name": "Liam Johnson",
		"student_id":   "ST-2025-001",
		"grade":        "3B",
		"type":         "Illness",
		"subtype":      "Headache",
		"occurred_at":  "2025-05-21",
		"description":  "Complained of headache after lunch",
		"severity":     "Minor",
	})
	if st != http.StatusCreated {
		t.Fatalf("create event: expected 201, got %d body=%s", st, body)
	}
	var created eventJSON
	mustUnmarshal(t, body, &created)
	if created.ID != 6 {
		t.Fatalf("expected new event id 6, got %d", created.ID)
	}
	if created.Status != "Open" {
		t.Fatalf("expected default status Open, got %s", created.Status)
	}

	// Subtipo fuera de catálogo: 400.
	st, _ = doReq(t, ts.URL, "POST", "/medical-events", "nurse-1", "nurse", map[string]any{
		"student_name": "Liam Johnson",
		"type":         "Illness",
		"subtype":      "Sprain",
		"description":  "x",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("bad subtype: expected 400, got %d", st)
	}

	// PATCH parcial: solo cambia lo enviado.
	st, body = doReq(t, ts.URL, "PATCH", "/medical-events/6", "nurse-1", "nurse", map[string]any{
		"status":    "Resolved",
		"treatment": "Paracetamol, rest",
	})
	if st != http.StatusOK {
		t.Fatalf("patch event: expected 200, got %d body=%s", st, body)
	}
	var patched eventJSON
	mustUnmarshal(t, body, &patched)
	if patched.Status != "Resolved" || patched.Treatment != "Paracetamol, rest" {
		t.Fatalf("patch not applied: %+v", patched)
	}
	if patched.StudentName != "Liam Johnson" || patched.Subtype != "Headache" {
		t.Fatalf("patch clobbered unrelated fields: %+v", patched)
	}

	// Borrar requiere manager/admin.
	st, _ = doReq(t, ts.URL, "DELETE", "/medical-events/6", "nurse-1", "nurse", nil)
	if st != http.StatusForbidden {
		t.Fatalf("delete by nurse: expected 403, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "DELETE", "/medical-events/6", "manager-1", "manager", nil)
	if st != http.StatusNoContent {
		t.Fatalf("delete by manager: expected 204, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "GET", "/medical-events/6", "nurse-1", "nurse", nil)
	if st != http.StatusNotFound {
		t.Fatalf("get deleted event: expected 404, got %d", st)
	}

	// Borrar dos veces: 404.
	st, _ = doReq(t, ts.URL, "DELETE", "/medical-events/6", "manager-1", "manager", nil)
	if st != http.StatusNotFound {
		t.Fatalf("double delete: expected 404, got %d", st)
	}
}

func TestHTTP_NotifyParent_NoWebhookConfigured(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/medical-events/5/notify-parent", "nurse-1", "nurse", nil)
	if st != http.StatusOK {
		t.Fatalf("notify-parent: expected 200, got %d body=%s", st, body)
	}

	var resp struct {
		Event      eventJSON `json:"event"`
		Dispatched bool      `json:"dispatched"`
	}
	mustUnmarshal(t, body, &resp)

	// Sin webhook el evento queda marcado pero no hubo despacho.
	if !resp.Event.ParentNotified || resp.Event.NotifiedBy != "nurse-1" {
		t.Fatalf("event not marked: %+v", resp.Event)
	}
	if resp.Dispatched {
		t.Fatalf("expected dispatched = false without webhook")
	}

	// La marca persiste.
	st, body = doReq(t, ts.URL, "GET", "/medical-events/5", "nurse-1", "nurse", nil)
	if st != http.StatusOK {
		t.Fatalf("get event 5: expected 200, got %d", st)
	}
	var e eventJSON
	mustUnmarshal(t, body, &e)
	if !e.ParentNotified {
		t.Fatalf("notified mark not persisted: %+v", e)
	}
}

func TestHTTP_Campaigns_Lifecycle(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	// El seed trae 2 campañas.
	st, body := doReq(t, ts.URL, "GET", "/campaigns", "manager-1", "manager", nil)
	if st != http.StatusOK {
		t.Fatalf("list campaigns: expected 200, got %d body=%s", st, body)
	}
	var list []campaignJSON
	mustUnmarshal(t, body, &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 seeded campaigns, got %d", len(list))
	}

	// Crear arranca en draft.
	st, body = doReq(t, ts.URL, "POST", "/campaigns", "manager-1", "manager", map[string]any{
		"kind":          "vaccination",
		"name":          "Measles catch-up",
		"target_grades": []string{"1A", "2C"},
	})
	if st != http.StatusCreated {
		t.Fatalf("create campaign: expected 201, got %d body=%s", st, body)
	}
	var c campaignJSON
	mustUnmarshal(t, body, &c)
	if c.Status != "draft" || c.ID == "" {
		t.Fatalf("unexpected created campaign: %+v", c)
	}

	// draft no puede arrancar directo: 409.
	st, _ = doReq(t, ts.URL, "POST", "/campaigns/"+c.ID+"/start", "manager-1", "manager", nil)
	if st != http.StatusConflict {
		t.Fatalf("start draft: expected 409, got %d", st)
	}

	// schedule -> start -> complete.
	st, body = doReq(t, ts.URL, "POST", "/campaigns/"+c.ID+"/schedule", "manager-1", "manager", map[string]any{
		"scheduled_date": "2025-09-15",
	})
	if st != http.StatusOK {
		t.Fatalf("schedule: expected 200, got %d body=%s", st, body)
	}
	mustUnmarshal(t, body, &c)
	if c.Status != "scheduled" {
		t.Fatalf("expected scheduled, got %s", c.Status)
	}

	st, body = doReq(t, ts.URL, "POST", "/campaigns/"+c.ID+"/start", "manager-1", "manager", nil)
	if st != http.StatusOK {
		t.Fatalf("start: expected 200, got %d body=%s", st, body)
	}
	st, body = doReq(t, ts.URL, "POST", "/campaigns/"+c.ID+"/complete", "manager-1", "manager", nil)
	if st != http.StatusOK {
		t.Fatalf("complete: expected 200, got %d body=%s", st, body)
	}
	mustUnmarshal(t, body, &c)
	if c.Status != "completed" {
		t.Fatalf("expected completed, got %s", c.Status)
	}

	// Terminal: cancelar da 409.
	st, _ = doReq(t, ts.URL, "POST", "/campaigns/"+c.ID+"/cancel", "manager-1", "manager", nil)
	if st != http.StatusConflict {
		t.Fatalf("cancel completed: expected 409, got %d", st)
	}

	// Un apoderado no transiciona campañas.
	st, _ = doReq(t, ts.URL, "POST", "/campaigns/"+c.ID+"/cancel", "parent-1", "parent", nil)
	if st != http.StatusForbidden {
		t.Fatalf("cancel by parent: expected 403, got %d", st)
	}
}

func TestHTTP_Students_CRUD(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/students?grade=4A", "nurse-1", "nurse", nil)
	if st != http.StatusOK {
		t.Fatalf("list students: expected 200, got %d body=%s", st, body)
	}
	var list []studentJSON
	mustUnmarshal(t, body, &list)
	if len(list) != 1 || list[0].FullName != "Emma Wilson" {
		t.Fatalf("expected only Emma Wilson in 4A, got %+v", list)
	}

	st, body = doReq(t, ts.URL, "POST", "/students", "nurse-1", "nurse", map[string]any{
		"code":         "ST-2025-006",
		"full_name":    "Mia Taylor",
		"grade":        "3B",
		"gender":       "female",
		"parent_name":  "Anna Taylor",
		"parent_phone": "+1-555-0106",
	})
	if st != http.StatusCreated {
		t.Fatalf("create student: expected 201, got %d body=%s", st, body)
	}
	var created studentJSON
	mustUnmarshal(t, body, &created)
	if created.ID == "" || !created.Active {
		t.Fatalf("unexpected created student: %+v", created)
	}

	// PATCH parcial: desactivar sin tocar el resto.
	st, body = doReq(t, ts.URL, "PATCH", "/students/"+created.ID, "manager-1", "manager", map[string]any{
		"active": false,
	})
	if st != http.StatusOK {
		t.Fatalf("patch student: expected 200, got %d body=%s", st, body)
	}
	var patched studentJSON
	mustUnmarshal(t, body, &patched)
	if patched.Active || patched.FullName != "Mia Taylor" {
		t.Fatalf("patch not applied cleanly: %+v", patched)
	}

	st, _ = doReq(t, ts.URL, "GET", "/students/nope", "nurse-1", "nurse", nil)
	if st != http.StatusNotFound {
		t.Fatalf("get unknown student: expected 404, got %d", st)
	}
}

// -------------------------
// Helpers
// -------------------------

type eventJSON struct {
	ID             int    `json:"id"`
	StudentName    string `json:"student_name"`
	Type           string `json:"type"`
	Subtype        string `json:"subtype"`
	Severity       string `json:"severity"`
	Status         string `json:"status"`
	Treatment      string `json:"treatment"`
	ParentNotified bool   `json:"parent_notified"`
	NotifiedBy     string `json:"notified_by"`
}

type campaignJSON struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type studentJSON struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	FullName string `json:"full_name"`
	Grade    string `json:"grade"`
	Active   bool   `json:"active"`
}

func mustUnmarshal(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("unmarshal %s: %v", string(body), err)
	}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID, debugRole string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}
	if debugRole != "" {
		req.Header.Set("X-Debug-Role", debugRole)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

// Package web serves a small local web UI over the IBAN engine: a country
// picker, a generate button and copy-to-clipboard output. By default it binds
// to 127.0.0.1; set host to "0.0.0.0" for containers.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mkregel/ibangen"
)

// maxBatch caps the count parameter of /generate.
const maxBatch = 100

// Server is the local HTTP UI over a Generator.
type Server struct {
	host   string
	port   int
	engine *ibangen.Generator
	logger *slog.Logger

	mu       sync.Mutex
	listener net.Listener
	started  bool
}

// NewServer returns a Server that has not yet started listening. If host is
// empty, "127.0.0.1" is used; port 0 means the OS assigns a free port. If
// logger is nil, slog.Default() is used.
func NewServer(port int, host string, engine *ibangen.Generator, logger *slog.Logger) *Server {
	if host == "" {
		host = "127.0.0.1"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{host: host, port: port, engine: engine, logger: logger}
}

// Port returns the port the server is listening on. Before Start it returns
// the configured port; after Start the actual bound port.
func (s *Server) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().(*net.TCPAddr).Port
	}
	return s.port
}

// Start binds to {host}:{port}, serves in a background goroutine, and shuts
// down cleanly when ctx is cancelled. Returns after the listener is open.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return errors.New("server already started")
	}
	if s.port < 0 {
		return fmt.Errorf("invalid port %d", s.port)
	}

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	s.listener = ln
	s.started = true

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /countries", s.handleCountries)
	mux.HandleFunc("GET /generate", s.handleGenerate)

	srv := &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	context.AfterFunc(ctx, func() {
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			s.logger.Error("web server shutdown", "error", err)
		}
	})

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("web server error", "error", err)
		}
	}()

	return nil
}

// countryView is the JSON shape of one entry in GET /countries.
type countryView struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Length int    `json:"length"`
}

func (s *Server) countries() []countryView {
	codes := s.engine.Codes()
	out := make([]countryView, 0, len(codes))
	for _, code := range codes {
		p, err := s.engine.Profile(code)
		if err != nil {
			continue
		}
		out = append(out, countryView{Code: p.Code, Name: p.Name, Length: p.Length})
	}
	return out
}

// generateResult is the JSON shape of GET /generate.
type generateResult struct {
	Country string   `json:"country"`
	IBANs   []result `json:"ibans"`
}

type result struct {
	Raw       string `json:"raw"`
	Formatted string `json:"formatted"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, s.countries()); err != nil {
		s.logger.Error("rendering index", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
}

func (s *Server) handleCountries(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.countries()); err != nil {
		s.logger.Error("encoding countries", "error", err)
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	count := 1
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "count must be a number")
			return
		}
		count = n
	}
	if count < 1 {
		count = 1
	}
	if count > maxBatch {
		count = maxBatch
	}

	logger := s.logger.With("request", uuid.NewString(), "country", country)

	res := generateResult{IBANs: make([]result, 0, count)}
	for i := 0; i < count; i++ {
		iban, err := s.engine.Generate(country)
		if err != nil {
			status := http.StatusInternalServerError
			if ibangen.KindOf(err) == ibangen.UnsupportedCountry {
				status = http.StatusBadRequest
			}
			logger.Error("generating", "error", err)
			jsonError(w, status, err.Error())
			return
		}
		res.Country = iban[:2]
		res.IBANs = append(res.IBANs, result{Raw: iban, Formatted: ibangen.Format(iban)})
	}

	logger.Info("generated", "count", len(res.IBANs))
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		logger.Error("encoding result", "error", err)
	}
}

func jsonError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>ibangen</title>
<style>
  *, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }

  :root {
    --bg:      #0d0d0d;
    --surface: #141414;
    --border:  rgba(255,255,255,0.07);
    --text:    #ededed;
    --muted:   #6b6b6b;
    --accent:  #5e6ad2;
    --green:   #4ade80;
    --red:     #f87171;
    --radius:  10px;
    --font:    -apple-system, 'Inter', 'Segoe UI', sans-serif;
    --mono:    'JetBrains Mono', 'SF Mono', 'Fira Code', monospace;
  }

  body {
    background: var(--bg);
    color: var(--text);
    font-family: var(--font);
    font-size: 14px;
    line-height: 1.5;
    min-height: 100vh;
    padding: 0 24px 64px;
    max-width: 720px;
    margin: 0 auto;
  }

  header {
    display: flex;
    align-items: center;
    justify-content: space-between;
    padding: 28px 0 32px;
    border-bottom: 1px solid var(--border);
    margin-bottom: 32px;
  }
  .wordmark {
    display: flex; align-items: center; gap: 10px;
    font-size: 15px; font-weight: 600; letter-spacing: -0.01em;
  }
  .wordmark-icon {
    width: 26px; height: 26px;
    background: var(--accent);
    border-radius: 7px;
    display: flex; align-items: center; justify-content: center;
    font-size: 14px;
  }
  .note { font-size: 12px; color: var(--muted); }

  .controls {
    display: flex; gap: 12px; align-items: flex-end; flex-wrap: wrap;
    background: var(--surface);
    border: 1px solid var(--border);
    border-radius: var(--radius);
    padding: 18px 20px;
    margin-bottom: 24px;
  }
  label { display: block; font-size: 11px; color: var(--muted); margin-bottom: 6px; }
  select, input[type=number] {
    background: var(--bg);
    color: var(--text);
    border: 1px solid var(--border);
    border-radius: 6px;
    padding: 8px 10px;
    font-size: 13px;
    font-family: var(--font);
  }
  input[type=number] { width: 80px; }
  button {
    background: var(--accent);
    color: #fff;
    border: none;
    border-radius: 6px;
    padding: 9px 18px;
    font-size: 13px;
    font-weight: 600;
    cursor: pointer;
  }
  button:hover { filter: brightness(1.1); }

  .iban {
    display: flex; align-items: center; justify-content: space-between;
    background: var(--surface);
    border: 1px solid var(--border);
    border-radius: var(--radius);
    padding: 12px 16px;
    margin-bottom: 8px;
    font-family: var(--mono);
    font-size: 14px;
  }
  .copy {
    background: transparent;
    border: 1px solid var(--border);
    color: var(--muted);
    font-weight: 500;
    padding: 4px 12px;
  }
  .copy:hover { color: var(--text); }
  .copy.copied { color: var(--green); border-color: rgba(74,222,128,0.4); }
  .error { color: var(--red); font-size: 13px; margin-bottom: 16px; }
</style>
</head>
<body>

<header>
  <div class="wordmark">
    <div class="wordmark-icon">№</div>
    ibangen
  </div>
  <span class="note">test fixtures only — not real accounts</span>
</header>

<div class="controls">
  <div>
    <label for="country">Country</label>
    <select id="country">
      {{range .}}<option value="{{.Code}}">{{.Code}} — {{.Name}} ({{.Length}})</option>
      {{end}}
    </select>
  </div>
  <div>
    <label for="count">Count</label>
    <input type="number" id="count" value="5" min="1" max="100">
  </div>
  <button onclick="generate()">Generate</button>
</div>

<div id="error" class="error" hidden></div>
<div id="results"></div>

<script>
async function generate() {
  const country = document.getElementById('country').value;
  const count = document.getElementById('count').value;
  const errEl = document.getElementById('error');
  errEl.hidden = true;
  try {
    const resp = await fetch('/generate?country=' + encodeURIComponent(country) +
      '&count=' + encodeURIComponent(count));
    const data = await resp.json();
    if (!resp.ok) {
      errEl.textContent = data.error || 'generation failed';
      errEl.hidden = false;
      return;
    }
    render(data.ibans);
  } catch (e) {
    errEl.textContent = 'server unreachable';
    errEl.hidden = false;
  }
}

function render(ibans) {
  const el = document.getElementById('results');
  el.innerHTML = '';
  for (const i of ibans) {
    const row = document.createElement('div');
    row.className = 'iban';
    const span = document.createElement('span');
    span.textContent = i.formatted;
    const btn = document.createElement('button');
    btn.className = 'copy';
    btn.textContent = 'Copy';
    btn.onclick = async () => {
      await navigator.clipboard.writeText(i.raw);
      btn.textContent = 'Copied';
      btn.classList.add('copied');
      setTimeout(() => { btn.textContent = 'Copy'; btn.classList.remove('copied'); }, 1200);
    };
    row.append(span, btn);
    el.append(row);
  }
}
</script>
</body>
</html>`))

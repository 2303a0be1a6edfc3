package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/materialshub/catalog-extract/internal/associate"
	"github.com/materialshub/catalog-extract/internal/classify"
	"github.com/materialshub/catalog-extract/internal/config"
	"github.com/materialshub/catalog-extract/internal/enrich"
	"github.com/materialshub/catalog-extract/internal/extract"
	"github.com/materialshub/catalog-extract/internal/ingest"
	"github.com/materialshub/catalog-extract/internal/store"
	"github.com/materialshub/catalog-extract/internal/validate"
	"github.com/materialshub/catalog-extract/pkg/types"
)

type pingResp struct {
	OK              bool   `json:"ok"`
	OllamaURL       string `json:"ollama_url"`
	OllamaReachable bool   `json:"ollama_reachable"`
	Note            string `json:"note,omitempty"`
}

type chunkResp struct {
	types.Chunk
	Classification classify.Classification `json:"classification"`
}

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(getenv("CONFIG", "config.yaml"))
	if err != nil {
		log.Fatal(err)
	}

	st, err := store.New(cfg.DataRoot)
	if err != nil {
		log.Fatal(err)
	}

	validator := classify.NewValidator(cfg.Classify)
	extractor := extract.New(cfg.Extract)
	chunker := ingest.NewChunker(
		ingest.WithChunkSize(cfg.Chunker.Size),
		ingest.WithOverlap(cfg.Chunker.Overlap),
	)

	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"service":"catalog-extract"}`))
	})

	r.Get("/llm/ping", func(w http.ResponseWriter, _ *http.Request) {
		body, _ := json.Marshal(map[string]any{
			"model":   cfg.Ollama.Model,
			"format":  "json",
			"system":  `Return ONLY valid JSON: {"ok":true}`,
			"prompt":  "Say nothing else—just the JSON.",
			"options": map[string]any{"temperature": 0.2},
		})
		client := &http.Client{Timeout: 5 * time.Second}
		resp, err := client.Post(cfg.Ollama.URL+"/api/generate", "application/json", bytes.NewReader(body))
		reachable := err == nil && resp != nil && resp.StatusCode < 500
		if resp != nil {
			resp.Body.Close()
		}
		out := pingResp{OK: true, OllamaURL: cfg.Ollama.URL, OllamaReachable: reachable}
		if !reachable {
			out.Note = "Ollama not running or model not pulled yet — mock engine still works."
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out)
	})

	// Upload catalog files, one job per request.
	r.Post("/ingest", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(64 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		jobID := uuid.NewString()
		if _, err := st.MkJob(jobID); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		saved := 0
		for _, fh := range r.MultipartForm.File["files"] {
			src, err := fh.Open()
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			defer src.Close()
			dstPath := filepath.Join(st.UploadsDir(jobID), filepath.Base(fh.Filename))
			dst, err := os.Create(dstPath)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			if _, err := io.Copy(dst, src); err != nil {
				dst.Close()
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			dst.Close()
			saved++
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true, "jobId": jobID, "files": saved})
	})

	// Parse and chunk the uploads, with a per-chunk type classification.
	r.Get("/jobs/{id}/chunks", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		chunks, notes, err := parseJobChunks(st, chunker, id)
		if err != nil {
			http.Error(w, "job not found", http.StatusNotFound)
			return
		}
		out := make([]chunkResp, len(chunks))
		for i, c := range chunks {
			out[i] = chunkResp{Chunk: c, Classification: classify.ClassifyChunk(c.Content)}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"chunks": out, "notes": notes})
	})

	// Run the two-stage product pipeline and persist the records.
	r.Post("/jobs/{id}/products", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		chunks, notes, err := parseJobChunks(st, chunker, id)
		if err != nil {
			http.Error(w, "job not found", http.StatusNotFound)
			return
		}

		engine := r.URL.Query().Get("engine")
		if engine == "" {
			engine = cfg.Pipeline.Engine
		}
		var enricher enrich.Enricher
		switch engine {
		case "ollama":
			enricher = enrich.NewOllama(cfg.Ollama.URL, cfg.Ollama.Model)
		default:
			engine = "mock"
			enricher = enrich.NewMock(extractor)
		}

		pipeline := enrich.NewPipeline(validator, enricher,
			enrich.WithMinChunkLength(cfg.Pipeline.MinChunkLength),
			enrich.WithValidate(validate.Record),
		)
		records, stats, err := pipeline.Run(r.Context(), chunks)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if err := st.WriteJSON(id, "products.json", records); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"ok": true, "engine": engine,
			"products": records, "stats": stats, "notes": notes,
		})
	})

	r.Get("/jobs/{id}/products", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var records []types.ProductRecord
		if err := st.ReadJSON(id, "products.json", &records); err != nil {
			http.Error(w, "no products for job", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	})

	// Score image-product associations for caller-supplied images.
	r.Post("/associations", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Images   []types.ImageRef      `json:"images"`
			Products []types.ProductRecord `json:"products"`
			Options  *associate.Options    `json:"options"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		opts := cfg.Association
		if req.Options != nil {
			opts = *req.Options
		}
		if opts.Threshold <= 0 {
			opts.Threshold = associate.DefaultThreshold
		}
		out := associate.Associate(req.Images, req.Products, opts)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"associations": out})
	})

	log.Printf("catalog-extract listening on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

func parseJobChunks(st *store.FS, chunker *ingest.Chunker, jobID string) ([]types.Chunk, []string, error) {
	upDir := st.UploadsDir(jobID)
	entries, err := os.ReadDir(upDir)
	if err != nil {
		return nil, nil, err
	}

	var chunks []types.Chunk
	var notes []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		doc, err := ingest.ParseFile(filepath.Join(upDir, e.Name()))
		if err != nil {
			notes = append(notes, e.Name()+": "+err.Error())
			continue
		}
		notes = append(notes, doc.Notes...)
		chunks = append(chunks, chunker.Chunk(doc)...)
	}
	return chunks, notes, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

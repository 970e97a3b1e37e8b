package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

var (
	baseURL    = pflag.String("url", "http://127.0.0.1:8090", "perfume finder base url")
	numWorkers = pflag.Int("workers", 50, "concurrent workers")
	phaseLen   = pflag.Duration("duration", 10*time.Second, "duration of each phase")
)

var (
	perfumeIDs = []string{"1", "2", "3", "4", "5", "6"}
	queries    = []string{"dior", "chanel", "rose", "vanilla", "woody", "aventus", "bergamot", "xyz"}
	shopURLs   = []string{
		"https://www.notino.com/dior/sauvage-eau-de-parfum",
		"http://perfume-deals.tk/sauvage",
		"https://flacon-outlet.xyz/black-opium",
		"https://www.harrods.com/en-gb/creed-aventus",
		"not a url",
	}
)

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

type operation func(rng *rand.Rand) result

func main() {
	pflag.Parse()

	fmt.Println("=== Perfume Finder Load Test ===")
	fmt.Printf("Target: %s | Workers: %d | Phase: %s\n\n", *baseURL, *numWorkers, *phaseLen)

	fmt.Print("Waiting for server... ")
	if !waitForServer() {
		fmt.Println("FAILED: server not responding")
		return
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Browsing (search, suggestions, detail, prices, safety) ---")
	runPhase(*phaseLen, weighted(
		0.35, doSearch,
		0.20, doSuggestions,
		0.25, doDetail,
		0.10, doPrices,
		0.10, doSafety,
	))

	fmt.Println("\n--- Phase 2: User state (favorites and alerts, every write persisted) ---")
	runPhase(*phaseLen, weighted(
		0.30, doAddFavorite,
		0.20, doRemoveFavorite,
		0.15, doListFavorites,
		0.20, doCreateAlert,
		0.10, doListAlerts,
		0.05, doRefreshAlerts,
	))

	fmt.Println("\n--- Phase 3: Mixed (90% browsing, 10% writes) ---")
	runPhase(*phaseLen, weighted(
		0.40, doSearch,
		0.30, doDetail,
		0.20, doListFavorites,
		0.05, doAddFavorite,
		0.05, doCreateAlert,
	))
}

func waitForServer() bool {
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(*baseURL + "/health")
		if err == nil {
			drain(resp)
			return true
		}
		time.Sleep(200 * time.Millisecond)
	}
	return false
}

// weighted takes (weight, operation) pairs; weights should add up to 1.
func weighted(pairs ...interface{}) operation {
	type entry struct {
		upTo float64
		op   operation
	}
	var table []entry
	var acc float64
	for i := 0; i+1 < len(pairs); i += 2 {
		acc += pairs[i].(float64)
		table = append(table, entry{upTo: acc, op: pairs[i+1].(func(*rand.Rand) result)})
	}
	return func(rng *rand.Rand) result {
		r := rng.Float64() * acc
		for _, e := range table {
			if r < e.upTo {
				return e.op(rng)
			}
		}
		return table[len(table)-1].op(rng)
	}
}

func runPhase(duration time.Duration, work operation) {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	var mu sync.Mutex
	all := make(map[string]*stats)
	record := func(r result) {
		mu.Lock()
		defer mu.Unlock()
		s, ok := all[r.endpoint]
		if !ok {
			s = &stats{}
			all[r.endpoint] = s
		}
		s.count++
		if r.err {
			s.errors++
		}
		s.latencies = append(s.latencies, r.latency)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < *numWorkers; i++ {
		seed := rand.Int63() + int64(i)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			for gctx.Err() == nil {
				record(work(rng))
			}
			return nil
		})
	}
	_ = g.Wait()

	printResults(all, duration)
}

func printResults(all map[string]*stats, duration time.Duration) {
	var totalOps, totalErrors int64

	endpoints := make([]string, 0, len(all))
	for ep := range all {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 88))

	for _, ep := range endpoints {
		s := all[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	if totalOps == 0 {
		fmt.Println("  no requests completed")
		return
	}
	fmt.Println("  " + strings.Repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, float64(totalOps)/duration.Seconds())
}

func pick(rng *rand.Rand, from []string) string {
	return from[rng.Intn(len(from))]
}

func call(name, method, path string, body interface{}, wantStatus int) result {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, *baseURL+path, reader)
	if err != nil {
		return result{endpoint: name, err: true}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint: name, latency: lat, err: true}
	}
	drain(resp)
	return result{endpoint: name, latency: lat, err: resp.StatusCode != wantStatus}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

func doSearch(rng *rand.Rand) result {
	return call("GET /perfumes", http.MethodGet, "/perfumes?q="+url.QueryEscape(pick(rng, queries)), nil, http.StatusOK)
}

func doSuggestions(rng *rand.Rand) result {
	q := pick(rng, queries)
	return call("GET /suggestions", http.MethodGet, "/suggestions?q="+url.QueryEscape(q[:1+rng.Intn(len(q))]), nil, http.StatusOK)
}

func doDetail(rng *rand.Rand) result {
	return call("GET /perfume", http.MethodGet, "/perfume?id="+pick(rng, perfumeIDs), nil, http.StatusOK)
}

func doPrices(rng *rand.Rand) result {
	return call("GET /prices", http.MethodGet, "/prices?id="+pick(rng, perfumeIDs), nil, http.StatusOK)
}

func doSafety(rng *rand.Rand) result {
	return call("GET /safety", http.MethodGet, "/safety?url="+url.QueryEscape(pick(rng, shopURLs)), nil, http.StatusOK)
}

func doAddFavorite(rng *rand.Rand) result {
	return call("POST /favorites", http.MethodPost, "/favorites", map[string]string{"id": pick(rng, perfumeIDs)}, http.StatusCreated)
}

func doRemoveFavorite(rng *rand.Rand) result {
	return call("DELETE /favorites", http.MethodDelete, "/favorites?id="+pick(rng, perfumeIDs), nil, http.StatusNoContent)
}

func doListFavorites(_ *rand.Rand) result {
	return call("GET /favorites", http.MethodGet, "/favorites", nil, http.StatusOK)
}

func doCreateAlert(rng *rand.Rand) result {
	return call("POST /alerts", http.MethodPost, "/alerts", map[string]string{"perfumeId": pick(rng, perfumeIDs)}, http.StatusCreated)
}

func doListAlerts(_ *rand.Rand) result {
	return call("GET /alerts", http.MethodGet, "/alerts", nil, http.StatusOK)
}

func doRefreshAlerts(_ *rand.Rand) result {
	return call("POST /alerts/refresh", http.MethodPost, "/alerts/refresh", nil, http.StatusOK)
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

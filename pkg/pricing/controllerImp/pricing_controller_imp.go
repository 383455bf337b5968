package controllerImp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"greengreen/pkg/apperr"
	"greengreen/pkg/pricing/controller"
	"greengreen/pkg/pricing/service"
)

const maxPageBytes = 1_500_000

type PricingCtrl struct {
	s      service.PricingService
	allow  map[string]bool
	client *http.Client
}

// New builds the import controller. Only hosts listed in allowDomains may be
// fetched by URL.
func New(s service.PricingService, allowDomains []string) controller.PricingController {
	allow := map[string]bool{}
	for _, h := range allowDomains {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			allow[h] = true
		}
	}
	client := &http.Client{
		Timeout: 20 * time.Second,
		// every hop must stay on an allowed host
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return errors.New("too many redirects")
			}
			if host := strings.ToLower(req.URL.Hostname()); !allow[host] {
				return fmt.Errorf("redirect to %s not allowed", host)
			}
			return nil
		},
	}
	return &PricingCtrl{s: s, allow: allow, client: client}
}

type importReq struct {
	URL  string `json:"url"`
	HTML string `json:"html"`
}

func (h *PricingCtrl) Import(c echo.Context) error {
	var req importReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	var (
		body   io.Reader
		source string
	)
	switch {
	case strings.TrimSpace(req.HTML) != "":
		body, source = strings.NewReader(req.HTML), "inline"
	case req.URL != "":
		u, err := url.Parse(req.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad url"})
		}
		if !h.allow[strings.ToLower(u.Hostname())] {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"})
		}
		b, err := h.fetchHTML(c.Request().Context(), u.String())
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		body, source = bytes.NewReader(b), u.String()
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url or html required"})
	}

	rep, err := h.s.Import(body, source)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *PricingCtrl) fetchHTML(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: status %d", resp.StatusCode)
	}
	if resp.ContentLength > maxPageBytes {
		return nil, fmt.Errorf("page too large")
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") {
		return nil, fmt.Errorf("unsupported content-type: %s", ct)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
}

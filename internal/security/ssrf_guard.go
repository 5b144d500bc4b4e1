// Package security reúne as proteções da aplicação.
package security

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/doyensec/safeurl"
)

// SSRFGuardService define a interface de proteção contra SSRF.
// Usada na configuração das fontes de notícia e em cada busca de feed.
type SSRFGuardService interface {
	// NewSafeClient cria um cliente HTTP com proteção contra SSRF.
	// A biblioteca safeurl bloqueia IPs privados, loopback, link-local
	// e o IP de metadados de nuvem, validando o IP resolvido no Dialer,
	// o que cobre também ataques de DNS rebinding.
	NewSafeClient(timeout time.Duration, maxResponseSize int64) *http.Client

	// ValidateURL valida a URL estaticamente antes de qualquer requisição.
	// Verifica esquema, host e IP; devolve erro para URL perigosa.
	ValidateURL(rawURL string) error
}

// allowedSchemes são os esquemas de URL aceitos nas fontes de feed.
var allowedSchemes = []string{"http", "https"}

// blockedNetworks são as faixas de rede bloqueadas, parseadas uma vez na
// inicialização do pacote. A verificação pós-resolução de DNS fica a
// cargo do safeurl no cliente HTTP.
var blockedNetworks []net.IPNet

func init() {
	cidrs := []string{
		// IPs privados (RFC 1918)
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		// Loopback (RFC 1122)
		"127.0.0.0/8",
		// Link-local (RFC 3927), inclui o IP de metadados 169.254.169.254
		"169.254.0.0/16",
		// Rede corrente
		"0.0.0.0/8",
		// Loopback IPv6
		"::1/128",
		// Link-local IPv6
		"fe80::/10",
		// Unique-local IPv6
		"fc00::/7",
	}
	for _, cidr := range cidrs {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			panic(fmt.Sprintf("CIDR inválido em blockedNetworks: %s: %v", cidr, err))
		}
		blockedNetworks = append(blockedNetworks, *network)
	}
}

// ssrfGuard implementa SSRFGuardService.
type ssrfGuard struct{}

// NewSSRFGuard cria um SSRFGuardService.
func NewSSRFGuard() *ssrfGuard {
	return &ssrfGuard{}
}

// NewSafeClient cria um cliente HTTP com proteção contra SSRF.
func (g *ssrfGuard) NewSafeClient(timeout time.Duration, maxResponseSize int64) *http.Client {
	config := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes(allowedSchemes...).
		SetAllowedPorts(80, 443).
		Build()

	wrappedClient := safeurl.Client(config)
	return wrappedClient.Client
}

// ValidateURL valida a URL estaticamente, sem resolver DNS.
// Serve de pré-checagem na configuração das fontes; o DNS rebinding é
// tratado pelo Dialer do cliente criado em NewSafeClient.
func (g *ssrfGuard) ValidateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("URL vazia")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("URL inválida: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if !isAllowedScheme(scheme) {
		return fmt.Errorf("esquema não permitido: %s (permitidos: %v)", scheme, allowedSchemes)
	}

	host := parsed.Hostname()
	if host == "" {
		return fmt.Errorf("host vazio na URL: %s", rawURL)
	}

	ip := net.ParseIP(host)
	if ip != nil {
		if isBlockedIP(ip) {
			return fmt.Errorf("endereço IP bloqueado: %s", ip.String())
		}
		return nil
	}

	if isBlockedHostname(host) {
		return fmt.Errorf("host bloqueado: %s", host)
	}

	return nil
}

// isAllowedScheme verifica se o esquema está na lista de permissão.
func isAllowedScheme(scheme string) bool {
	for _, allowed := range allowedSchemes {
		if strings.EqualFold(scheme, allowed) {
			return true
		}
	}
	return false
}

// isBlockedIP verifica se o IP cai em alguma faixa bloqueada.
func isBlockedIP(ip net.IP) bool {
	for _, network := range blockedNetworks {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// blockedHostnames são os nomes de host bloqueados.
var blockedHostnames = []string{
	"localhost",
}

// isBlockedHostname verifica se o host está na lista de bloqueio.
func isBlockedHostname(host string) bool {
	lower := strings.ToLower(host)
	for _, blocked := range blockedHostnames {
		if lower == blocked {
			return true
		}
	}
	return false
}

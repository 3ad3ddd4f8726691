package handlers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
)

// Full workflow over HTTP: register customer and stock, quote 4 m² of a
// 10 m² slab, approve, and watch the balance drop with a ledger entry.
func TestQuoteApprovalEndToEnd(t *testing.T) {
	r, _ := setupTestServer(t)
	token := signupAndLogin(t, r)

	rr := doJSON(t, r, http.MethodPost, "/clientes", token, gin.H{
		"nome": "Maria Souza", "cpf": "529.982.247-25", "telefone": "(21) 99876-5432",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("cliente: status %d body %s", rr.Code, rr.Body.String())
	}
	clienteId := decodeBody(t, rr)["id"].(float64)

	rr = doJSON(t, r, http.MethodPost, "/estoque", token, gin.H{
		"nome_item": "Chapa de Granito Verde", "tipo": "Granito",
		"quantidade": "10.00", "unidade_medida": "m²", "preco_unitario": "350.00",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("estoque: status %d body %s", rr.Code, rr.Body.String())
	}
	itemId := decodeBody(t, rr)["id"].(float64)

	rr = doJSON(t, r, http.MethodPost, "/orcamentos", token, gin.H{
		"cliente_id":  clienteId,
		"observacoes": "bancada 4m²",
		"itens": []gin.H{{
			"item_estoque_id":          itemId,
			"quantidade":               "4.00",
			"preco_unitario_praticado": "350.00",
			"subtotal":                 "1400.00",
			"log_calculo":              "4.00m² x R$350.00 = R$1400.00",
		}},
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("orcamento: status %d body %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	orcamentoId := body["id"].(float64)
	if body["status"] != "Pendente" {
		t.Errorf("status = %v, want Pendente", body["status"])
	}
	if body["nome_cliente"] != "Maria Souza" {
		t.Errorf("nome_cliente = %v", body["nome_cliente"])
	}

	rr = doJSON(t, r, http.MethodPut, "/orcamentos/"+strconv.Itoa(int(orcamentoId))+"/status", token, gin.H{
		"status": "Aprovado",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("aprovar: status %d body %s", rr.Code, rr.Body.String())
	}
	if decodeBody(t, rr)["status"] != "Aprovado" {
		t.Errorf("status after approval = %s", rr.Body.String())
	}

	rr = doJSON(t, r, http.MethodGet, "/estoque/"+strconv.Itoa(int(itemId)), token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get estoque: status %d", rr.Code)
	}
	if q := decodeBody(t, rr)["quantidade"]; q != "6" && q != "6.00" {
		t.Errorf("quantidade = %v, want 6", q)
	}

	rr = doJSON(t, r, http.MethodGet, "/movimentacoes_estoque", token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("movimentacoes: status %d", rr.Code)
	}
}

func TestQuoteApprovalInsufficientStockHTTP(t *testing.T) {
	r, _ := setupTestServer(t)
	token := signupAndLogin(t, r)

	rr := doJSON(t, r, http.MethodPost, "/clientes", token, gin.H{
		"nome": "Pedro", "cpf": "168.995.350-09", "telefone": "21911112222",
	})
	clienteId := decodeBody(t, rr)["id"].(float64)

	rr = doJSON(t, r, http.MethodPost, "/estoque", token, gin.H{
		"nome_item": "Mármore Raro", "tipo": "Mármore", "quantidade": "1.00", "unidade_medida": "m²",
	})
	itemId := decodeBody(t, rr)["id"].(float64)

	rr = doJSON(t, r, http.MethodPost, "/orcamentos", token, gin.H{
		"cliente_id": clienteId,
		"itens": []gin.H{{
			"item_estoque_id":          itemId,
			"quantidade":               "2.00",
			"preco_unitario_praticado": "100.00",
			"subtotal":                 "200.00",
		}},
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("orcamento: status %d body %s", rr.Code, rr.Body.String())
	}
	orcamentoId := decodeBody(t, rr)["id"].(float64)

	rr = doJSON(t, r, http.MethodPut, "/orcamentos/"+strconv.Itoa(int(orcamentoId))+"/status", token, gin.H{
		"status": "Aprovado",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("aprovar sem estoque: status %d, want 400; body %s", rr.Code, rr.Body.String())
	}
	if _, ok := decodeBody(t, rr)["erro"]; !ok {
		t.Errorf("error body missing 'erro': %s", rr.Body.String())
	}
}

func TestDuplicateClienteHTTPConflict(t *testing.T) {
	r, _ := setupTestServer(t)
	token := signupAndLogin(t, r)

	payload := gin.H{"nome": "Dup", "cpf": "52998224725", "telefone": "21911112222"}
	if rr := doJSON(t, r, http.MethodPost, "/clientes", token, payload); rr.Code != http.StatusCreated {
		t.Fatalf("first create: status %d", rr.Code)
	}
	rr := doJSON(t, r, http.MethodPost, "/clientes", token, payload)
	if rr.Code != http.StatusConflict {
		t.Errorf("duplicate: status %d, want 409", rr.Code)
	}
}

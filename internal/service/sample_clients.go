// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/client-registry/models"

// SampleClients returns the built-in demo records. They carry no ids, so
// every seeding appends new rows.
func SampleClients() []models.Client {
	return []models.Client{
		{Name: "João Silva", Email: "joao@email.com", ExternalRef: "001"},
		{Name: "Maria Santos", Email: "maria@email.com", ExternalRef: "002"},
		{Name: "Pedro Oliveira", Email: "pedro@email.com", ExternalRef: "003"},
		{Name: "Ana Costa", Email: "ana@email.com", ExternalRef: "004"},
		{Name: "Carlos Souza", Email: "carlos@email.com", ExternalRef: "005"},
		{Name: "Lucia Ferreira", Email: "lucia@email.com", ExternalRef: "006"},
		{Name: "Roberto Lima", Email: "roberto@email.com", ExternalRef: "007"},
		{Name: "Patricia Alves", Email: "patricia@email.com", ExternalRef: "008"},
		{Name: "Fernando Rocha", Email: "fernando@email.com", ExternalRef: "009"},
		{Name: "Juliana Martins", Email: "juliana@email.com", ExternalRef: "010"},
		{Name: "Ricardo Pereira", Email: "ricardo@email.com", ExternalRef: "011"},
		{Name: "Sandra Gomes", Email: "sandra@email.com", ExternalRef: "012"},
		{Name: "Paulo Ribeiro", Email: "paulo@email.com", ExternalRef: "013"},
		{Name: "Camila Dias", Email: "camila@email.com", ExternalRef: "014"},
		{Name: "Marcos Barbosa", Email: "marcos@email.com", ExternalRef: "015"},
		{Name: "Beatriz Castro", Email: "beatriz@email.com", ExternalRef: "016"},
		{Name: "Gustavo Mendes", Email: "gustavo@email.com", ExternalRef: "017"},
		{Name: "Larissa Cardoso", Email: "larissa@email.com", ExternalRef: "018"},
		{Name: "Diego Nascimento", Email: "diego@email.com", ExternalRef: "019"},
		{Name: "Vanessa Araújo", Email: "vanessa@email.com", ExternalRef: "020"},
	}
}

package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Interface strings of the Bible pages, keyed by their English text.
var portuguese = map[string]string{
	"Holy Bible":                                  "Bíblia Sagrada",
	"Explore the Scriptures in multiple versions": "Explore as Escrituras em múltiplas versões",
	"Old Testament":                               "Antigo Testamento",
	"New Testament":                               "Novo Testamento",
	"All Books":                                   "Todos os Livros",
	"Previous":                                    "Anterior",
	"Next":                                        "Próximo",
	"Chapter %d":                                  "Capítulo %d",
	"Version":                                     "Versão",
	"Read":                                        "Ler",
	"No verses found for this chapter.":           "Nenhum versículo encontrado para este capítulo.",
	"No books available.":                         "Nenhum livro disponível.",
	"Something went wrong":                        "Algo deu errado",
	"We could not load this page. Please try again later.": "Não foi possível carregar esta página. Tente novamente mais tarde.",
	"Page not found": "Página não encontrada",
}

func init() {
	if err := registerMessages(portuguese); err != nil {
		panic(err)
	}
}

// registerMessages adds the Portuguese translations and identity English
// entries to the default catalog.
func registerMessages(entries map[string]string) error {
	for key, translation := range entries {
		if err := message.SetString(language.BrazilianPortuguese, key, translation); err != nil {
			return fmt.Errorf("i18n: register %q: %w", key, err)
		}
		if err := message.SetString(language.English, key, key); err != nil {
			return fmt.Errorf("i18n: register %q: %w", key, err)
		}
	}
	return nil
}

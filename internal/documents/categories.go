package documents

// Categories lists every act category the registry accepts, in the
// order the protocol screen renders them.
var Categories = []string{
	"Denuncia", "Ricorso", "Rinvio a Giudizio", "Contratto Partnership", "Contratto Lavoro",
	"Contratto Prestito", "Contratto Affitto", "Testamento", "Contratto Vendita Terreno",
	"Cessione Aziendale", "Contratto Generale", "Cancellazione Partito", "Unione Partito",
	"Cambio nome Partito", "Trasferimento Partito", "Richiesta Interna", "Registrazione Bunker",
	"Richiesta Avvocato", "Nomina Avvocato", "Prenotazione Corso Avvocato", "Licenza Avvocato",
	"Rinnovo Licenza Avvocato", "Certificato di Divorzio", "Notifica di Divorzio", "Udienza Confermativa",
	"Convalida Arresto", "Richiesta di Custodia Cautelare", "Verbale", "Notifica di Rinvio", "Verdetto",
	"Verbale Interrogatorio", "Titolo Esecutivo", "Richiesta Rinvio a Giudizio", "Richiesta di Accesso agli Atti",
	"Deposizione Giurata", "Notifica Giudiziaria", "Titolo di Irruzione", "Decreto di Perquisizione Privato",
	"Decreto di Perquisizione Pubblico",
}

// ValidCategory reports whether c is a recognized act category.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// PartyLabelSet names the parties an act category involves. An empty
// label means the category does not declare that party slot.
type PartyLabelSet struct {
	A string `json:"a,omitempty"`
	B string `json:"b,omitempty"`
}

var partyLabels = map[string]PartyLabelSet{
	"Denuncia":                          {A: "Denunciante", B: "Denunciato"},
	"Ricorso":                           {A: "Ricorrente", B: "Resistente"},
	"Rinvio a Giudizio":                 {A: "Imputato"},
	"Convalida Arresto":                 {A: "Arrestato"},
	"Richiesta di Custodia Cautelare":   {A: "Indagato"},
	"Richiesta Rinvio a Giudizio":       {A: "Imputato"},
	"Verdetto":                          {A: "Parti in Causa"},
	"Notifica Giudiziaria":              {A: "Destinatario"},
	"Contratto Generale":                {A: "Parte A", B: "Parte B"},
	"Contratto Partnership":             {A: "Partner A", B: "Partner B"},
	"Contratto Lavoro":                  {A: "Datore di Lavoro", B: "Lavoratore"},
	"Contratto Prestito":                {A: "Finanziatore", B: "Beneficiario"},
	"Contratto Affitto":                 {A: "Locatore", B: "Locatario"},
	"Contratto Vendita Terreno":         {A: "Venditore", B: "Acquirente"},
	"Cessione Aziendale":                {A: "Contraente A", B: "Contraente B"},
	"Certificato di Divorzio":           {A: "Coniuge A", B: "Coniuge B"},
	"Notifica di Divorzio":              {A: "Coniuge A", B: "Coniuge B"},
	"Cancellazione Partito":             {A: "Partito"},
	"Unione Partito":                    {A: "Partito Incorporante", B: "Partito Incorporato"},
	"Cambio nome Partito":               {A: "Partito"},
	"Trasferimento Partito":             {A: "Cedente", B: "Ricevente"},
	"Registrazione Bunker":              {A: "Proprietario"},
	"Testamento":                        {A: "Testatore"},
	"Verbale Interrogatorio":            {A: "Interrogato"},
	"Deposizione Giurata":               {A: "Deponente"},
	"Titolo di Irruzione":               {A: "Autorità", B: "Bersaglio"},
	"Decreto di Perquisizione Pubblico": {A: "Autorità", B: "Bersaglio"},
	"Decreto di Perquisizione Privato":  {A: "Autorità", B: "Bersaglio"},
	"Titolo Esecutivo":                  {A: "Destinatario"},
	"Richiesta Avvocato":                {A: "Cliente", B: "Avvocato"},
	"Nomina Avvocato":                   {A: "Cliente", B: "Avvocato"},
	"Prenotazione Corso Avvocato":       {A: "Cittadino"},
	"Licenza Avvocato":                  {A: "Cittadino"},
	"Rinnovo Licenza Avvocato":          {A: "Cittadino"},
}

// PartyLabels returns the party labels for a category. Categories
// without declared parties return the zero set.
func PartyLabels(category string) PartyLabelSet {
	return partyLabels[category]
}

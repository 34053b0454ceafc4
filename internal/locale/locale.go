// Package locale holds the user-visible strings of the application and
// their translations.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. English text doubles as the key.
const (
	MenuFile         = "File"
	MenuQuit         = "Quit"
	MenuDarkMode     = "Dark mode"
	LabelPreserve    = "Preserve"
	LabelDays        = "days"
	ButtonAnalyze    = "Analyze"
	ButtonDelete     = "Delete permanently"
	ButtonClear      = "Clear console"
	StatusTrashCount = "%d items in trash"
	StatusTrashError = "Trash unavailable"
	HeaderAnalysis   = "ANALYSIS"
	HeaderDeletion   = "PERMANENT DELETION"
	ColumnName       = "Item name"
	ColumnFileName   = "File name"
	ColumnDeletedOn  = "Deleted on"
	ColumnTrashedOn  = "Moved to trash on"
	ColumnSize       = "Size"
	ColumnStatus     = "Status"
	ColumnCount      = "Count"
	StatusOK         = "OK"
	StatusFailed     = "Oops!"
	StatSuccess      = "Success"
	StatFailure      = "Failure"
	DeletionStats    = "Deletion statistics:"
	TotalToProcess   = "Total items to process: %d (%s)"
	NothingToDelete  = "There is nothing to delete"
	ListFailed       = "**** Failed to list trash items: %v ****"
	TimestampFailed  = "**** Timestamp conversion failed for %s ****"
	NoticeKey        = "notice"
	WindowTitle      = "Trash manager"
)

const noticeEN = `    /\_/\  (
   ( ^.^ ) _)
      \"/  (
   (  |  |  )
(__d b__)

USAGE

> Preserve X days <
  Number of days items stay in the trash before they may be deleted permanently.
  Example: with 5 days, items deleted more than 5 days ago are removed from the trash.
> Analyze <
  Lists the items deleted longer ago than the configured number of days.
> Delete permanently <
  Permanently deletes the items older than the configured number of days.
  Note: running an analysis first is not required.
`

const noticeFR = `    /\_/\  (
   ( ^.^ ) _)
      \"/  (
   (  |  |  )
(__d b__)

NOTICE D'UTILISATION

> Préserver X jours <
  Nombre de jours durant lesquels les éléments restent dans la corbeille avant de pouvoir être supprimés définitivement.
  Exemple : avec 5 jours, les éléments supprimés il y a plus de 5 jours sont retirés de la corbeille.
> Analyser <
  Liste les éléments supprimés au-delà du nombre de jours défini.
> Supprimer définitivement <
  Supprime définitivement les éléments qui ont dépassé le nombre de jours défini.
  Remarque : il n'est pas nécessaire d'effectuer une analyse au préalable.
`

var french = map[string]string{
	MenuFile:         "Fichier",
	MenuQuit:         "Quitter",
	MenuDarkMode:     "Mode sombre",
	LabelPreserve:    "Préserver",
	LabelDays:        "jours",
	ButtonAnalyze:    "Analyser",
	ButtonDelete:     "Supprimer définitivement",
	ButtonClear:      "Vider la console",
	StatusTrashCount: "%d éléments dans la corbeille",
	StatusTrashError: "Corbeille indisponible",
	HeaderAnalysis:   "ANALYSE",
	HeaderDeletion:   "SUPPRESSION DÉFINITIVE",
	ColumnName:       "Nom de l'élément",
	ColumnFileName:   "Nom du fichier",
	ColumnDeletedOn:  "Date de suppression",
	ColumnTrashedOn:  "Date de mise à la corbeille",
	ColumnSize:       "Taille",
	ColumnStatus:     "Statut",
	ColumnCount:      "Nombre",
	StatusOK:         "OK",
	StatusFailed:     "Oups !",
	StatSuccess:      "Succès",
	StatFailure:      "Échec",
	DeletionStats:    "Statistiques de suppression :",
	TotalToProcess:   "Total d'éléments à traiter : %d (%s)",
	NothingToDelete:  "Il n'y a aucun élément à supprimer",
	ListFailed:       "**** Erreur lors de la récupération des éléments de la corbeille : %v ****",
	TimestampFailed:  "**** Erreur lors de la conversion de l'horodatage de %s ****",
	NoticeKey:        noticeFR,
	WindowTitle:      "Gestionnaire de corbeille",
}

var cat = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	if err := b.SetString(language.English, NoticeKey, noticeEN); err != nil {
		panic(err)
	}
	for key, msg := range french {
		if err := b.SetString(language.French, key, msg); err != nil {
			panic(err)
		}
	}
	return b
}

// Tag maps a language setting ("en", "fr", "fr-CH", ...) to a supported tag.
// Anything unsupported resolves to English.
func Tag(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	matcher := language.NewMatcher([]language.Tag{language.English, language.French})
	_, idx, conf := matcher.Match(tag)
	if conf == language.No || idx == 0 {
		return language.English
	}
	return language.French
}

// Printer returns a printer for lang backed by the application catalog.
func Printer(lang string) *message.Printer {
	return message.NewPrinter(Tag(lang), message.Catalog(cat))
}

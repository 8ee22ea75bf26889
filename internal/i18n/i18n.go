// Package i18n provides the localization tables for report text and currency
// formatting. Lookups never fail: a missing language or key falls back to
// English, and a key missing from English resolves to the key itself.
package i18n

// DefaultLanguage is the fallback for unknown languages and missing keys.
const DefaultLanguage = "en"

var supported = map[string]bool{"en": true, "es": true, "nl": true, "de": true}

// translations maps text-key -> language -> localized label.
var translations = map[string]map[string]string{
	"report_title": {
		"en": "ROOFING PROJECT REPORT",
		"es": "INFORME DEL PROYECTO DE TECHADO",
		"nl": "DAKPROJECT RAPPORT",
		"de": "DACHPROJEKT BERICHT",
	},
	"prepared_for": {
		"en": "PREPARED FOR",
		"es": "PREPARADO PARA",
		"nl": "OPGESTELD VOOR",
		"de": "ERSTELLT FÜR",
	},
	"project_overview": {
		"en": "PROJECT OVERVIEW",
		"es": "RESUMEN DEL PROYECTO",
		"nl": "PROJECTOVERZICHT",
		"de": "PROJEKTÜBERSICHT",
	},
	"estimated_project_cost": {
		"en": "ESTIMATED PROJECT COST",
		"es": "COSTO ESTIMADO DEL PROYECTO",
		"nl": "GESCHATTE PROJECTKOSTEN",
		"de": "GESCHÄTZTE PROJEKTKOSTEN",
	},
	"cost_breakdown": {
		"en": "COST BREAKDOWN",
		"es": "DESGLOSE DE COSTOS",
		"nl": "KOSTENSPECIFICATIE",
		"de": "KOSTENAUFSTELLUNG",
	},
	"materials": {
		"en": "Materials",
		"es": "Materiales",
		"nl": "Materialen",
		"de": "Materialien",
	},
	"labor": {
		"en": "Labor",
		"es": "Mano de obra",
		"nl": "Arbeid",
		"de": "Arbeitskosten",
	},
	"permits": {
		"en": "Permits",
		"es": "Permisos",
		"nl": "Vergunningen",
		"de": "Genehmigungen",
	},
	"contingency": {
		"en": "Contingency",
		"es": "Contingencia",
		"nl": "Onvoorzien",
		"de": "Unvorhergesehenes",
	},
	"total": {
		"en": "Total",
		"es": "Total",
		"nl": "Totaal",
		"de": "Gesamt",
	},
	"item": {
		"en": "Item",
		"es": "Concepto",
		"nl": "Onderdeel",
		"de": "Posten",
	},
	"amount": {
		"en": "Amount",
		"es": "Importe",
		"nl": "Bedrag",
		"de": "Betrag",
	},
	"share": {
		"en": "Share",
		"es": "Porcentaje",
		"nl": "Aandeel",
		"de": "Anteil",
	},
	"notes": {
		"en": "Notes",
		"es": "Notas",
		"nl": "Opmerkingen",
		"de": "Hinweise",
	},
	"recommendations": {
		"en": "RECOMMENDATIONS",
		"es": "RECOMENDACIONES",
		"nl": "AANBEVELINGEN",
		"de": "EMPFEHLUNGEN",
	},
	"next_steps": {
		"en": "NEXT STEPS",
		"es": "PRÓXIMOS PASOS",
		"nl": "VOLGENDE STAPPEN",
		"de": "NÄCHSTE SCHRITTE",
	},
	"scope_of_work": {
		"en": "SCOPE OF WORK",
		"es": "ALCANCE DEL TRABAJO",
		"nl": "WERKOMVANG",
		"de": "LEISTUNGSUMFANG",
	},
	"project_timeline": {
		"en": "PROJECT TIMELINE",
		"es": "CRONOGRAMA DEL PROYECTO",
		"nl": "PROJECTPLANNING",
		"de": "PROJEKTZEITPLAN",
	},
	"inspection_findings": {
		"en": "INSPECTION FINDINGS",
		"es": "HALLAZGOS DE LA INSPECCIÓN",
		"nl": "INSPECTIEBEVINDINGEN",
		"de": "INSPEKTIONSERGEBNISSE",
	},
	"code_compliance": {
		"en": "CODE COMPLIANCE",
		"es": "CUMPLIMIENTO NORMATIVO",
		"nl": "NALEVING BOUWVOORSCHRIFTEN",
		"de": "VORSCHRIFTENKONFORMITÄT",
	},
	"claim_summary": {
		"en": "CLAIM SUMMARY",
		"es": "RESUMEN DE LA RECLAMACIÓN",
		"nl": "CLAIMOVERZICHT",
		"de": "SCHADENÜBERSICHT",
	},
	"damage_classifications": {
		"en": "DAMAGE CLASSIFICATIONS",
		"es": "CLASIFICACIONES DE DAÑOS",
		"nl": "SCHADECLASSIFICATIES",
		"de": "SCHADENSKLASSIFIZIERUNGEN",
	},
	"coverage_analysis": {
		"en": "COVERAGE ANALYSIS",
		"es": "ANÁLISIS DE COBERTURA",
		"nl": "DEKKINGSANALYSE",
		"de": "DECKUNGSANALYSE",
	},
	"slope": {
		"en": "Slope",
		"es": "Pendiente",
		"nl": "Dakvlak",
		"de": "Dachfläche",
	},
	"damage_type": {
		"en": "Damage Type",
		"es": "Tipo de daño",
		"nl": "Schadetype",
		"de": "Schadensart",
	},
	"severity": {
		"en": "Severity",
		"es": "Gravedad",
		"nl": "Ernst",
		"de": "Schweregrad",
	},
	"description": {
		"en": "Description",
		"es": "Descripción",
		"nl": "Omschrijving",
		"de": "Beschreibung",
	},
	"glossary": {
		"en": "ROOFING TERMS GLOSSARY",
		"es": "GLOSARIO DE TÉRMINOS DE TECHADO",
		"nl": "BEGRIPPENLIJST DAKWERK",
		"de": "GLOSSAR DER DACHBEGRIFFE",
	},
	"budget_summary": {
		"en": "BUDGET SUMMARY",
		"es": "RESUMEN DEL PRESUPUESTO",
		"nl": "BUDGETOVERZICHT",
		"de": "BUDGETÜBERSICHT",
	},
	"job_details": {
		"en": "JOB DETAILS",
		"es": "DETALLES DEL TRABAJO",
		"nl": "OPDRACHTDETAILS",
		"de": "AUFTRAGSDETAILS",
	},
	"license_information": {
		"en": "LICENSE INFORMATION",
		"es": "INFORMACIÓN DE LICENCIA",
		"nl": "LICENTIEGEGEVENS",
		"de": "LIZENZINFORMATIONEN",
	},
	"site_photos": {
		"en": "SITE PHOTOS",
		"es": "FOTOS DEL SITIO",
		"nl": "LOCATIEFOTO'S",
		"de": "FOTOS VOM STANDORT",
	},
	"image_unavailable": {
		"en": "image unavailable",
		"es": "imagen no disponible",
		"nl": "afbeelding niet beschikbaar",
		"de": "Bild nicht verfügbar",
	},
	"generated_on": {
		"en": "Generated on",
		"es": "Generado el",
		"nl": "Gegenereerd op",
		"de": "Erstellt am",
	},
	"scan_to_view": {
		"en": "Scan to view this report online",
		"es": "Escanee para ver este informe en línea",
		"nl": "Scan om dit rapport online te bekijken",
		"de": "Scannen, um diesen Bericht online anzusehen",
	},
	"project_type": {
		"en": "Project Type",
		"es": "Tipo de proyecto",
		"nl": "Projecttype",
		"de": "Projekttyp",
	},
	"location": {
		"en": "Location",
		"es": "Ubicación",
		"nl": "Locatie",
		"de": "Standort",
	},
	"roof_area": {
		"en": "Roof Area",
		"es": "Superficie del techo",
		"nl": "Dakoppervlak",
		"de": "Dachfläche",
	},
	"material_tier": {
		"en": "Material Tier",
		"es": "Calidad del material",
		"nl": "Materiaalklasse",
		"de": "Materialklasse",
	},
	"timeline": {
		"en": "Timeline",
		"es": "Plazo",
		"nl": "Planning",
		"de": "Zeitrahmen",
	},
	"roof_age": {
		"en": "Roof Age",
		"es": "Antigüedad del techo",
		"nl": "Leeftijd van het dak",
		"de": "Alter des Daches",
	},
	"current_material": {
		"en": "Current Material",
		"es": "Material actual",
		"nl": "Huidig materiaal",
		"de": "Aktuelles Material",
	},
	"phase": {
		"en": "Phase",
		"es": "Fase",
		"nl": "Fase",
		"de": "Phase",
	},
	"duration": {
		"en": "Duration",
		"es": "Duración",
		"nl": "Duur",
		"de": "Dauer",
	},
	"crew": {
		"en": "Crew",
		"es": "Cuadrilla",
		"nl": "Ploeg",
		"de": "Team",
	},
	"safety_notes": {
		"en": "SAFETY NOTES",
		"es": "NOTAS DE SEGURIDAD",
		"nl": "VEILIGHEIDSNOTITIES",
		"de": "SICHERHEITSHINWEISE",
	},
	"maintenance_tips": {
		"en": "MAINTENANCE TIPS",
		"es": "CONSEJOS DE MANTENIMIENTO",
		"nl": "ONDERHOUDSTIPS",
		"de": "WARTUNGSTIPPS",
	},
	"overall_condition": {
		"en": "Overall Condition",
		"es": "Estado general",
		"nl": "Algemene staat",
		"de": "Gesamtzustand",
	},
	"term": {
		"en": "Term",
		"es": "Término",
		"nl": "Begrip",
		"de": "Begriff",
	},
	"definition": {
		"en": "Definition",
		"es": "Definición",
		"nl": "Definitie",
		"de": "Definition",
	},
	"budget_range": {
		"en": "Budget Range",
		"es": "Rango de presupuesto",
		"nl": "Budgetbereik",
		"de": "Budgetrahmen",
	},
	"financing_needed": {
		"en": "Financing Needed",
		"es": "Financiamiento requerido",
		"nl": "Financiering nodig",
		"de": "Finanzierung benötigt",
	},
	"primary_concern": {
		"en": "Primary Concern",
		"es": "Preocupación principal",
		"nl": "Belangrijkste zorg",
		"de": "Hauptanliegen",
	},
	"estimated_lifespan": {
		"en": "Estimated Lifespan",
		"es": "Vida útil estimada",
		"nl": "Geschatte levensduur",
		"de": "Geschätzte Lebensdauer",
	},
	"energy_efficiency": {
		"en": "ENERGY EFFICIENCY",
		"es": "EFICIENCIA ENERGÉTICA",
		"nl": "ENERGIE-EFFICIËNTIE",
		"de": "ENERGIEEFFIZIENZ",
	},
	"company": {
		"en": "Company",
		"es": "Empresa",
		"nl": "Bedrijf",
		"de": "Unternehmen",
	},
	"license_number": {
		"en": "License Number",
		"es": "Número de licencia",
		"nl": "Licentienummer",
		"de": "Lizenznummer",
	},
	"crew_size": {
		"en": "Crew Size",
		"es": "Tamaño de la cuadrilla",
		"nl": "Ploeggrootte",
		"de": "Teamgröße",
	},
	"planned_start": {
		"en": "Planned Start",
		"es": "Inicio previsto",
		"nl": "Geplande start",
		"de": "Geplanter Beginn",
	},
	"bid_deadline": {
		"en": "Bid Deadline",
		"es": "Fecha límite de oferta",
		"nl": "Deadline offerte",
		"de": "Angebotsfrist",
	},
	"certification_body": {
		"en": "Certification Body",
		"es": "Organismo certificador",
		"nl": "Certificerende instantie",
		"de": "Zertifizierungsstelle",
	},
	"inspection_date": {
		"en": "Inspection Date",
		"es": "Fecha de inspección",
		"nl": "Inspectiedatum",
		"de": "Inspektionsdatum",
	},
	"inspection_type": {
		"en": "Inspection Type",
		"es": "Tipo de inspección",
		"nl": "Inspectietype",
		"de": "Inspektionsart",
	},
	"claim_information": {
		"en": "CLAIM INFORMATION",
		"es": "INFORMACIÓN DE LA RECLAMACIÓN",
		"nl": "CLAIMGEGEVENS",
		"de": "SCHADENINFORMATIONEN",
	},
	"claim_number": {
		"en": "Claim Number",
		"es": "Número de reclamación",
		"nl": "Claimnummer",
		"de": "Schadennummer",
	},
	"policy_number": {
		"en": "Policy Number",
		"es": "Número de póliza",
		"nl": "Polisnummer",
		"de": "Policennummer",
	},
	"insured_name": {
		"en": "Insured Name",
		"es": "Nombre del asegurado",
		"nl": "Naam verzekerde",
		"de": "Name des Versicherten",
	},
	"date_of_loss": {
		"en": "Date of Loss",
		"es": "Fecha del siniestro",
		"nl": "Schadedatum",
		"de": "Schadensdatum",
	},
	"cause_of_loss": {
		"en": "Cause of Loss",
		"es": "Causa del siniestro",
		"nl": "Schadeoorzaak",
		"de": "Schadensursache",
	},
	"deductible": {
		"en": "Deductible",
		"es": "Deducible",
		"nl": "Eigen risico",
		"de": "Selbstbeteiligung",
	},
	"repair_vs_replace": {
		"en": "Repair vs. Replace",
		"es": "Reparar o reemplazar",
		"nl": "Repareren of vervangen",
		"de": "Reparatur oder Austausch",
	},
	"contact": {
		"en": "Contact",
		"es": "Contacto",
		"nl": "Contact",
		"de": "Kontakt",
	},
}

// Normalize returns a supported language code, falling back to English.
func Normalize(lang string) string {
	if supported[lang] {
		return lang
	}
	return DefaultLanguage
}

// Text resolves a text key for a language. Missing language or key falls back
// to English; a key absent from the table resolves to the key itself.
func Text(key, lang string) string {
	entry, ok := translations[key]
	if !ok {
		return key
	}
	if v, ok := entry[Normalize(lang)]; ok && v != "" {
		return v
	}
	if v, ok := entry[DefaultLanguage]; ok {
		return v
	}
	return key
}

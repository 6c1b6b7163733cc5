package odsgen

// StyleDef is a named style definition: an ODF style fragment plus an
// optional name overriding the style:name encoded in the markup.
type StyleDef struct {
	Name       string
	Definition string
}

// builtinStyles are always available by name for rows and cells. They are
// loaded into the catalog without insertion; a style only reaches the output
// document on first use.
var builtinStyles = []StyleDef{
	{
		Name: "default_table_row",
		Definition: `<style:style style:family="table-row">
			<style:table-row-properties style:row-height="4.52mm"
			fo:break-before="auto" style:use-optimal-row-height="true"/>
			</style:style>`,
	},
	{
		Name: "table_row_1cm",
		Definition: `<style:style style:family="table-row">
			<style:table-row-properties style:row-height="1cm"
			fo:break-before="auto"/>
			</style:style>`,
	},
	{
		Name: "bold",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default">
			<style:text-properties fo:font-weight="bold"
			style:font-weight-asian="bold" style:font-weight-complex="bold"/>
			<style:table-cell-properties style:text-align-source="value-type"/>
			<style:paragraph-properties
			fo:margin-right="1mm"/>
			</style:style>`,
	},
	{
		Name: "bold_center",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default">
			<style:text-properties fo:font-weight="bold"
			style:font-weight-asian="bold" style:font-weight-complex="bold"/>
			<style:table-cell-properties style:text-align-source="fix"/>
			<style:paragraph-properties fo:text-align="center"/>
			</style:style>`,
	},
	{
		Name: "left",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default">
			<style:table-cell-properties style:text-align-source="fix"/>
			<style:paragraph-properties fo:text-align="start"
			fo:margin-left="1mm"/>
			</style:style>`,
	},
	{
		Name: "right",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default">
			<style:table-cell-properties style:text-align-source="fix"/>
			<style:paragraph-properties fo:text-align="end"
			fo:margin-right="1mm"/>
			</style:style>`,
	},
	{
		Name: "center",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default">
			<style:table-cell-properties style:text-align-source="fix"/>
			<style:paragraph-properties fo:text-align="center"/>
			</style:style>`,
	},
	{
		Name: "decimal1",
		Definition: `<number:number-style><number:number number:decimal-places="1"
			loext:min-decimal-places="1" number:min-integer-digits="1"
			number:grouping="false"/>
			</number:number-style>`,
	},
	{
		Name: "cell_decimal1",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default"
			style:data-style-name="decimal1">
			<style:paragraph-properties
			fo:margin-right="1.2mm"/>
			</style:style>`,
	},
	{
		Name: "decimal2",
		Definition: `<number:number-style><number:number number:decimal-places="2"
			loext:min-decimal-places="2" number:min-integer-digits="1"
			number:grouping="false"/>
			</number:number-style>`,
	},
	{
		Name: "cell_decimal2",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default"
			style:data-style-name="decimal2">
			<style:paragraph-properties
			fo:margin-right="1.2mm"/>
			</style:style>`,
	},
	{
		Name: "decimal3",
		Definition: `<number:number-style><number:number number:decimal-places="3"
			loext:min-decimal-places="3" number:min-integer-digits="1"
			number:grouping="false"/>
			</number:number-style>`,
	},
	{
		Name: "cell_decimal3",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default"
			style:data-style-name="decimal3">
			<style:paragraph-properties
			fo:margin-right="1.2mm"/>
			</style:style>`,
	},
	{
		Name: "decimal4",
		Definition: `<number:number-style><number:number number:decimal-places="4"
			loext:min-decimal-places="4" number:min-integer-digits="1"
			number:grouping="false"/>
			</number:number-style>`,
	},
	{
		Name: "cell_decimal4",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default"
			style:data-style-name="decimal4">
			<style:paragraph-properties
			fo:margin-right="1.2mm"/>
			</style:style>`,
	},
	{
		Name: "decimal6",
		Definition: `<number:number-style><number:number number:decimal-places="6"
			loext:min-decimal-places="6" number:min-integer-digits="1"
			number:grouping="false"/>
			</number:number-style>`,
	},
	{
		Name: "cell_decimal6",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default"
			style:data-style-name="decimal6">
			<style:paragraph-properties
			fo:margin-right="1.2mm"/>
			</style:style>`,
	},
	{
		Name: "integer",
		Definition: `<number:number-style><number:number number:decimal-places="0"
			loext:min-decimal-places="0" number:min-integer-digits="1"
			number:grouping="false"/>
			</number:number-style>`,
	},
	{
		Name: "integer_no_zero",
		Definition: `<number:number-style><number:number number:decimal-places="0"
			loext:min-decimal-places="0" number:min-integer-digits="0"
			number:grouping="false"/>
			</number:number-style>`,
	},
	{
		Name: "grid_06pt",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default">
			<style:table-cell-properties
			fo:border="0.06pt solid #000000"/>
			<style:paragraph-properties
			fo:margin-left="1.2mm" fo:margin-right="1.2mm"/>
			</style:style>`,
	},
	{
		Name: "bold_left_bg_gray_grid_06pt",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default">
			<style:table-cell-properties
			fo:background-color="#dddddd" fo:border="0.06pt solid #000000"
			style:text-align-source="fix"/>
			<style:paragraph-properties fo:text-align="start"
			fo:margin-left="1.2mm"/>
			<style:text-properties fo:font-weight="bold"
			style:font-weight-asian="bold" style:font-weight-complex="bold"/>
			</style:style>`,
	},
	{
		Name: "bold_right_bg_gray_grid_06pt",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default">
			<style:table-cell-properties
			fo:background-color="#dddddd" fo:border="0.06pt solid #000000"
			style:text-align-source="fix"/>
			<style:paragraph-properties fo:text-align="end"
			fo:margin-right="1.2mm"/>
			<style:text-properties fo:font-weight="bold"
			style:font-weight-asian="bold" style:font-weight-complex="bold"/>
			</style:style>`,
	},
	{
		Name: "bold_center_bg_gray_grid_06pt",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default">
			<style:table-cell-properties
			fo:background-color="#dddddd" fo:border="0.06pt solid #000000"
			style:text-align-source="fix"/>
			<style:paragraph-properties fo:text-align="center"/>
			<style:text-properties fo:font-weight="bold"
			style:font-weight-asian="bold" style:font-weight-complex="bold"/>
			</style:style>`,
	},
	{
		Name: "bold_left_grid_06pt",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default">
			<style:table-cell-properties
			fo:border="0.06pt solid #000000"
			style:text-align-source="fix"/>
			<style:paragraph-properties fo:text-align="start"
			fo:margin-left="1.2mm"/>
			<style:text-properties fo:font-weight="bold"
			style:font-weight-asian="bold" style:font-weight-complex="bold"/>
			</style:style>`,
	},
	{
		Name: "bold_right_grid_06pt",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default">
			<style:table-cell-properties
			fo:border="0.06pt solid #000000"
			style:text-align-source="fix"/>
			<style:paragraph-properties fo:text-align="end"
			fo:margin-right="1.2mm"/>
			<style:text-properties fo:font-weight="bold"
			style:font-weight-asian="bold" style:font-weight-complex="bold"/>
			</style:style>`,
	},
	{
		Name: "bold_center_grid_06pt",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default">
			<style:table-cell-properties
			fo:border="0.06pt solid #000000"
			style:text-align-source="fix"/>
			<style:paragraph-properties fo:text-align="center"/>
			<style:text-properties fo:font-weight="bold"
			style:font-weight-asian="bold" style:font-weight-complex="bold"/>
			</style:style>`,
	},
	{
		Name: "left_grid_06pt",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default">
			<style:table-cell-properties style:text-align-source="fix"
			fo:border="0.06pt solid #000000"/>
			<style:paragraph-properties
			fo:margin-left="1.2mm" fo:text-align="start"/>
			</style:style>`,
	},
	{
		Name: "right_grid_06pt",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default">
			<style:table-cell-properties style:text-align-source="fix"
			fo:border="0.06pt solid #000000"/>
			<style:paragraph-properties
			fo:margin-right="1.2mm" fo:text-align="end"/>
			</style:style>`,
	},
	{
		Name: "center_grid_06pt",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default">
			<style:table-cell-properties style:text-align-source="fix"
			fo:border="0.06pt solid #000000"/>
			<style:paragraph-properties fo:text-align="center"/>
			</style:style>`,
	},
	{
		Name: "integer_grid_06pt",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default"
			style:data-style-name="integer">
			<style:table-cell-properties
			fo:border="0.06pt solid #000000"/>
			<style:paragraph-properties
			fo:margin-left="1.2mm" fo:margin-right="1.2mm"/>
			</style:style>`,
	},
	{
		Name: "integer_no_zero_grid_06pt",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default"
			style:data-style-name="integer_no_zero">
			<style:table-cell-properties
			fo:border="0.06pt solid #000000"/>
			</style:style>`,
	},
	{
		Name: "center_integer_no_zero_grid_06pt",
		Definition: `<style:style style:family="table-cell"
			style:parent-style-name="Default"
			style:data-style-name="integer_no_zero">
			<style:table-cell-properties
			fo:border="0.06pt solid #000000"/>
			<style:paragraph-properties fo:text-align="center"/>
			</style:style>`,
	},
}

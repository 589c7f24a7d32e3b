package export

var (
	ParseBlocksForTest = parseBlocks
)

type BlockForTest = block

const (
	BlockHeadingForTest   = blockHeading
	BlockParagraphForTest = blockParagraph
	BlockCodeForTest      = blockCode
	BlockListItemForTest  = blockListItem
	BlockRuleForTest      = blockRule
)

func (x block) Kind() blockKind { return x.kind }
func (x block) Level() int      { return x.level }
func (x block) Text() string    { return x.text }
